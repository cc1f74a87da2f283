// Package handler contains the push endpoint of the notification worker.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"knect/config"
	deliverycontext "knect/internal/delivery/context"
	"knect/internal/domain/constants"
	"knect/internal/domain/entity"
	"knect/internal/infra/pubsub"
	"knect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenVerifier checks the credentials attached to a push request.
type TokenVerifier func(req *http.Request) error

// PushHandler handles Pub/Sub push messages carrying connection changes.
type PushHandler struct {
	verify TokenVerifier
	logger *slog.Logger
	pushUC usecase.PushUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	PushUC usecase.PushUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger: params.Logger,
		pushUC: params.PushUC,
	}

	// Only Google delivers signed pushes; local and develop setups post unauthenticated.
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		h.verify = verifyPubSubToken
	}

	return h
}

// WithVerifier replaces the push token check.
func (h *PushHandler) WithVerifier(verify TokenVerifier) *PushHandler {
	h.verify = verify

	return h
}

// HandlePush handles incoming Pub/Sub push messages. Retryable failures answer 503 so Pub/Sub
// redelivers; every other outcome answers 200 to stop redelivery.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	change, err := envelope.DecodeChange()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode connection change",
			slog.String("message_id", envelope.Message.MessageID), slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &envelope, change)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing connection change",
		slog.String("event_id", change.ID),
		slog.String("type", string(change.Type)),
		slog.String("connector_id", change.Connection.ConnectorID.String()),
	)

	result, err := h.pushUC.NotifyConnectionChange(ctx, change)
	if err != nil {
		retryable := errors.Is(err, usecase.ErrRetryable)
		reqLogger.Error("[Worker] Failed to process connection change",
			slog.String("event_id", change.ID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Connection change processed",
		slog.String("event_id", change.ID),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the change payload, then the inbound request.
func extractRequestID(ctx context.Context, envelope *pubsub.PushEnvelope, change *entity.ConnectionChange) string {
	if requestID := envelope.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if change.RequestID != "" {
		return change.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return deliverycontext.NewRequestID()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
