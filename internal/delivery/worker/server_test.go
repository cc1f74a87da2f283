package worker

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"knect/config"
	"knect/internal/delivery/worker/handler"
	mockUsecase "knect/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *notifierServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = "develop"
	cfg.Env.ServiceName = "knect-worker"
	logger := slog.New(slog.DiscardHandler)

	srv := &notifierServer{service: cfg.Env.ServiceName, logger: logger}
	push := handler.NewPushHandler(handler.PushHandlerParams{
		Config: cfg,
		Logger: logger,
		PushUC: mockUsecase.NewMockPushUsecase(t),
	})
	srv.echo = srv.routes(cfg, push)

	return srv
}

func TestNotifierServer_Health(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, healthPath, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"status": "ok", "service": "knect-worker"}, body)
}

func TestNotifierServer_PushRoute(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, pushPath, strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
