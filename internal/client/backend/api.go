package backend

import (
	"context"
	"net/http"
	"net/url"

	"knect/internal/domain/entity"
	"knect/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

const apiPrefix = "/api/v1"

type profileBody struct {
	FullName  string `json:"full_name"`
	JobTitle  string `json:"job_title"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
}

type scanBody struct {
	Payload   string   `json:"payload"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// GetProfile returns the public profile of id.
func (c *Client) GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profile entity.Profile
	if err := c.do(ctx, request{method: http.MethodGet, path: apiPrefix + "/profiles/" + id.String()}, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// SaveProfile upserts the signed-in user's profile.
func (c *Client) SaveProfile(ctx context.Context, input usecase.ProfileInput) (*entity.Profile, error) {
	body := profileBody{
		FullName:  input.FullName,
		JobTitle:  input.JobTitle,
		LinkedIn:  input.LinkedIn,
		GitHub:    input.GitHub,
		Twitter:   input.Twitter,
		Instagram: input.Instagram,
	}

	var profile entity.Profile
	if err := c.do(ctx, request{method: http.MethodPut, path: apiPrefix + "/profile", body: body}, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// UploadAvatar stores an avatar image and returns its URL.
func (c *Client) UploadAvatar(ctx context.Context, data []byte, contentType string) (string, error) {
	if data == nil {
		data = []byte{}
	}

	var out usecase.AvatarOutput
	err := c.do(ctx, request{
		method:      http.MethodPut,
		path:        apiPrefix + "/profile/avatar",
		raw:         data,
		contentType: contentType,
	}, &out)
	if err != nil {
		return "", err
	}

	return out.AvatarURL, nil
}

// ListConnections returns the signed-in user's connections.
func (c *Client) ListConnections(ctx context.Context) ([]*entity.ConnectionView, error) {
	return c.SearchConnections(ctx, "")
}

// SearchConnections filters the connections on the server by name or title.
func (c *Client) SearchConnections(ctx context.Context, query string) ([]*entity.ConnectionView, error) {
	req := request{method: http.MethodGet, path: apiPrefix + "/connections"}
	if query != "" {
		req.query = url.Values{"q": {query}}
	}

	var views []*entity.ConnectionView
	if err := c.do(ctx, req, &views); err != nil {
		return nil, err
	}

	return views, nil
}

// GetConnection returns one of the signed-in user's connections.
func (c *Client) GetConnection(ctx context.Context, id uuid.UUID) (*entity.ConnectionView, error) {
	var view entity.ConnectionView
	if err := c.do(ctx, request{method: http.MethodGet, path: apiPrefix + "/connections/" + id.String()}, &view); err != nil {
		return nil, err
	}

	return &view, nil
}

// UpsertPair commits both rows of a meeting in one call.
func (c *Client) UpsertPair(ctx context.Context, pair [2]entity.Connection) (*entity.PairOutcome, error) {
	var outcome entity.PairOutcome
	err := c.do(ctx, request{
		method: http.MethodPut,
		path:   apiPrefix + "/connections",
		body:   map[string]any{"pair": pair},
	}, &outcome)
	if err != nil {
		return nil, err
	}

	return &outcome, nil
}

// Scan lets the server process a scanned payload.
func (c *Client) Scan(ctx context.Context, payload string, coord *entity.Coordinate) (*usecase.ScanOutput, error) {
	body := scanBody{Payload: payload}
	if coord != nil {
		lat, lng := coord.Latitude, coord.Longitude
		body.Latitude, body.Longitude = &lat, &lng
	}

	var out usecase.ScanOutput
	if err := c.do(ctx, request{method: http.MethodPost, path: apiPrefix + "/connections/scan", body: body}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteConnection removes one of the signed-in user's connections.
func (c *Client) DeleteConnection(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, request{method: http.MethodDelete, path: apiPrefix + "/connections/" + id.String()}, nil)
}

// ConnectionMap returns the located connections as GeoJSON.
func (c *Client) ConnectionMap(ctx context.Context) (*geojson.FeatureCollection, error) {
	var raw []byte
	if err := c.do(ctx, request{method: http.MethodGet, path: apiPrefix + "/connections/map"}, &raw); err != nil {
		return nil, err
	}

	collection, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, errors.Wrap(err, "decode connection map")
	}

	return collection, nil
}

// PassToken returns the text of the signed-in user's pass.
func (c *Client) PassToken(ctx context.Context) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, request{method: http.MethodGet, path: apiPrefix + "/pass/token"}, &out); err != nil {
		return "", err
	}

	return out.Token, nil
}

// PassQRCode returns the signed-in user's pass as a PNG.
func (c *Client) PassQRCode(ctx context.Context) ([]byte, error) {
	var png []byte
	if err := c.do(ctx, request{method: http.MethodGet, path: apiPrefix + "/pass"}, &png); err != nil {
		return nil, err
	}

	return png, nil
}
