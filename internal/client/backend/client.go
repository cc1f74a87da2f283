// Package backend talks to the Knect API over HTTP and follows its change feed.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	domainerrors "knect/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultTimeout        = 15 * time.Second
	defaultReconnectDelay = 2 * time.Second
)

// Params configures a Client.
type Params struct {
	BaseURL string
	Timeout time.Duration
	Tokens  TokenStore
	Logger  *slog.Logger
	// ReconnectDelay is the pause between change-feed reconnects.
	ReconnectDelay time.Duration
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Client is the client-side adapter for the Knect API. Its methods are safe for concurrent use.
type Client struct {
	baseURL        *url.URL
	http           *http.Client
	stream         *http.Client
	tokens         TokenStore
	logger         *slog.Logger
	reconnectDelay time.Duration

	mu       sync.Mutex
	session  *Tokens
	loaded   bool
	watchers map[int]chan uuid.UUID
	nextID   int
}

// NewClient validates the base URL and returns a Client.
func NewClient(params Params) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(params.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("invalid base URL %q", params.BaseURL)
	}

	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	// The change feed is long-lived, so it gets a client without an overall timeout.
	stream := &http.Client{Transport: httpClient.Transport}

	tokens := params.Tokens
	if tokens == nil {
		tokens = &MemoryTokenStore{}
	}
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}
	delay := params.ReconnectDelay
	if delay <= 0 {
		delay = defaultReconnectDelay
	}

	return &Client{
		baseURL:        base,
		http:           httpClient,
		stream:         stream,
		tokens:         tokens,
		logger:         logger,
		reconnectDelay: delay,
		watchers:       make(map[int]chan uuid.UUID),
	}, nil
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *errorBody      `json:"error"`
}

type errorBody struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details"`
}

// request describes one API call. Body is either raw bytes with a content type or a value to encode
// as JSON.
type request struct {
	method      string
	path        string
	query       url.Values
	body        any
	raw         []byte
	contentType string
	anonymous   bool
}

// do performs req and decodes the data member of the envelope into out, or the raw body when out
// is a *[]byte. A 401 on an authenticated
// call triggers one token refresh and a retry.
func (c *Client) do(ctx context.Context, req request, out any) error {
	if !req.anonymous {
		if err := c.ensureFresh(ctx); err != nil {
			return err
		}
	}

	resp, err := c.send(ctx, req)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && !req.anonymous {
		resp.Body.Close()
		if err := c.refresh(ctx); err != nil {
			return err
		}
		if resp, err = c.send(ctx, req); err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && !req.anonymous {
		c.dropSession()

		return domainerrors.ErrAuthRequired
	}

	return decode(resp, out)
}

func (c *Client) send(ctx context.Context, req request) (*http.Response, error) {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WithStack(ctx.Err())
		}

		return nil, domainerrors.ErrNetworkFailure.WrapMessage(err.Error())
	}

	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, req request) (*http.Request, error) {
	target := c.baseURL.JoinPath(req.path)
	if len(req.query) > 0 {
		target.RawQuery = req.query.Encode()
	}

	var (
		body        io.Reader
		contentType = req.contentType
	)
	switch {
	case req.raw != nil:
		body = bytes.NewReader(req.raw)
	case req.body != nil:
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request body")
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target.String(), body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")

	if !req.anonymous {
		session, err := c.currentSession()
		if err != nil {
			return nil, err
		}
		if session == nil {
			return nil, domainerrors.ErrAuthRequired
		}
		httpReq.Header.Set("Authorization", "Bearer "+session.AccessToken)
	}

	return httpReq, nil
}

func decode(resp *http.Response, out any) error {
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domainerrors.ErrNetworkFailure.WrapMessage(err.Error())
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return errorFromResponse(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if blob, ok := out.(*[]byte); ok {
		*blob = raw

		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errors.Wrap(err, "decode response envelope")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrap(err, "decode response data")
	}

	return nil
}

// errorFromResponse maps an error envelope back to the predefined domain error of the same code so
// callers can match it with errors.Is.
func errorFromResponse(status int, raw []byte) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Error == nil {
		if status >= http.StatusInternalServerError {
			return domainerrors.ErrNetworkFailure.WithDetails(http.StatusText(status))
		}

		return domainerrors.NewBaseError(status, "HTTP_"+http.StatusText(status), http.StatusText(status), "")
	}

	details := detailsText(env.Error.Details)
	if known, ok := domainerrors.FromCode(env.Error.Code); ok {
		if details == "" {
			return known
		}

		return known.WithDetails(details)
	}

	return domainerrors.NewBaseError(status, env.Error.Code, env.Error.Message, details)
}

func detailsText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	return string(raw)
}
