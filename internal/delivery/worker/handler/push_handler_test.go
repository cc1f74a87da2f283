package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"knect/config"
	deliverycontext "knect/internal/delivery/context"
	"knect/internal/domain/entity"
	"knect/internal/infra/pubsub"
	mockUsecase "knect/internal/mocks/usecase"
	"knect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(t *testing.T) (*mockUsecase.MockPushUsecase, *PushHandler) {
	t.Helper()

	pushUC := mockUsecase.NewMockPushUsecase(t)
	cfg := &config.Config{}
	cfg.Env.Env = "develop"

	return pushUC, NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		PushUC: pushUC,
	})
}

func postEnvelope(t *testing.T, h *PushHandler, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func encodeChange(t *testing.T, change *entity.ConnectionChange) []byte {
	t.Helper()

	envelope, err := pubsub.NewPushEnvelope(change, "projects/knect/subscriptions/push")
	require.NoError(t, err)
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return body
}

func TestPushHandler_HandlePush(t *testing.T) {
	change := &entity.ConnectionChange{
		ID:         "evt-1",
		Type:       entity.ChangeInsert,
		Connection: entity.Connection{ID: uuid.New(), ConnectorID: uuid.New(), ConnectedToID: uuid.New()},
		ActorID:    uuid.New(),
		RequestID:  "req-1",
	}

	t.Run("delivers the decoded change", func(t *testing.T) {
		pushUC, h := newPushHandler(t)

		pushUC.EXPECT().
			NotifyConnectionChange(mock.Anything, mock.MatchedBy(func(got *entity.ConnectionChange) bool {
				return got.ID == change.ID && got.Connection.ConnectorID == change.Connection.ConnectorID
			})).
			RunAndReturn(func(ctx context.Context, _ *entity.ConnectionChange) (*usecase.PushResult, error) {
				assert.Equal(t, "req-1", deliverycontext.GetRequestIDFromContext(ctx))

				return &usecase.PushResult{Sent: 2}, nil
			})

		rec := postEnvelope(t, h, encodeChange(t, change))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("asks for redelivery on retryable failures", func(t *testing.T) {
		pushUC, h := newPushHandler(t)

		pushUC.EXPECT().
			NotifyConnectionChange(mock.Anything, mock.Anything).
			Return(nil, usecase.Retryable(errors.New("fcm unavailable")))

		rec := postEnvelope(t, h, encodeChange(t, change))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("acknowledges permanent failures", func(t *testing.T) {
		pushUC, h := newPushHandler(t)

		pushUC.EXPECT().
			NotifyConnectionChange(mock.Anything, mock.Anything).
			Return(nil, errors.New("malformed change"))

		rec := postEnvelope(t, h, encodeChange(t, change))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects data that is not base64", func(t *testing.T) {
		_, h := newPushHandler(t)

		rec := postEnvelope(t, h, []byte(`{"message":{"data":"%%%","messageId":"1"}}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects an unverified push", func(t *testing.T) {
		_, h := newPushHandler(t)
		h.WithVerifier(func(*http.Request) error { return errors.New("no token") })

		rec := postEnvelope(t, h, encodeChange(t, change))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestExtractRequestID(t *testing.T) {
	change := &entity.ConnectionChange{RequestID: "from-change"}

	var envelope pubsub.PushEnvelope
	envelope.Message.Attributes = map[string]string{"request_id": "from-attributes"}
	assert.Equal(t, "from-attributes", extractRequestID(context.Background(), &envelope, change))

	assert.Equal(t, "from-change", extractRequestID(context.Background(), &pubsub.PushEnvelope{}, change))

	ctx := deliverycontext.WithRequestID(context.Background(), "from-context")
	assert.Equal(t, "from-context", extractRequestID(ctx, &pubsub.PushEnvelope{}, &entity.ConnectionChange{}))

	generated := extractRequestID(context.Background(), &pubsub.PushEnvelope{}, &entity.ConnectionChange{})
	assert.NotEmpty(t, generated)
	assert.False(t, strings.Contains(generated, " "))
}
