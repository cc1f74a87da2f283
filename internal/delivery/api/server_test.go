package api

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"knect/config"
	mockSvc "knect/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEcho(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1K"
	cfg.HTTP.Timeouts.ReadTimeout = 3 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = time.Minute

	e := newEcho(cfg, slog.New(slog.DiscardHandler))
	e.POST("/echo", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	assert.Equal(t, 3*time.Second, e.Server.ReadTimeout)
	assert.Equal(t, time.Minute, e.Server.IdleTimeout)
	assert.NotNil(t, e.Validator)

	small := httptest.NewRecorder()
	e.ServeHTTP(small, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("{}")))
	assert.Equal(t, http.StatusNoContent, small.Code)

	large := httptest.NewRecorder()
	e.ServeHTTP(large, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 4096))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, large.Code)
}

func TestKnectServer_StopClosesChangeStreams(t *testing.T) {
	broker := mockSvc.NewMockChangeBroker(t)
	broker.EXPECT().Close().Once()

	srv := &knectServer{
		logger:  slog.New(slog.DiscardHandler),
		echo:    echo.New(),
		changes: broker,
	}

	require.NoError(t, srv.stop(context.Background()))
}
