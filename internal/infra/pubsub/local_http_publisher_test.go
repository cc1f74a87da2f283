package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"knect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChange() *entity.ConnectionChange {
	pair := entity.NewMutualPair(uuid.New(), uuid.New(), time.Now(), entity.NewCoordinate(48.85, 2.35))

	return &entity.ConnectionChange{
		ID:         "evt-1",
		Type:       entity.ChangeInsert,
		Connection: pair[1],
		OccurredAt: time.Now().UTC(),
		RequestID:  "req-1",
	}
}

func TestLocalHTTPPublisher_DeliversPushEnvelope(t *testing.T) {
	change := testChange()

	var received PushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	require.NoError(t, publisher.PublishConnectionChange(context.Background(), change))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "insert", received.Message.Attributes["type"])
	assert.Equal(t, change.Connection.ConnectorID.String(), received.Message.Attributes["connector_id"])

	decoded, err := received.DecodeChange()
	require.NoError(t, err)
	assert.Equal(t, change.Connection.ConnectorID, decoded.Connection.ConnectorID)
	assert.True(t, change.Connection.MetAt.Equal(decoded.Connection.MetAt))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	err := publisher.PublishConnectionChange(context.Background(), testChange())
	assert.ErrorContains(t, err, "non-success status: 503")
}

func TestPushEnvelope_DecodeChange_Invalid(t *testing.T) {
	env := &PushEnvelope{}
	env.Message.Data = "!!not-base64"

	_, err := env.DecodeChange()
	assert.Error(t, err)
}
