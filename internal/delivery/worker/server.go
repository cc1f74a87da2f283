// Package worker serves the push endpoint that turns connection changes into device notifications.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"knect/config"
	"knect/internal/delivery"
	"knect/internal/delivery/middleware"
	"knect/internal/delivery/worker/handler"
	"knect/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	healthPath = "/health"
	pushPath   = "/push"
)

type notifierServer struct {
	port    int
	service string
	logger  *slog.Logger
	echo    *echo.Echo
}

// ServerParams holds dependencies for the notification worker, injected by Fx.
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &notifierServer{
		port:    params.Cfg.HTTP.Port,
		service: params.Cfg.Env.ServiceName,
		logger:  params.Logger,
	}
	srv.echo = srv.routes(params.Cfg, params.PushHandler)

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// routes exposes the health check and the Pub/Sub push endpoint for connection changes.
func (s *notifierServer) routes(cfg *config.Config, push *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(s.logger).Process,
		middleware.NewLoggerMiddleware(s.logger, cfg).Handle,
	)

	e.GET(healthPath, s.health)
	e.POST(pushPath, push.HandlePush)

	return e
}

func (s *notifierServer) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": s.service})
}

func (s *notifierServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting notification worker", slog.String("host_port", hostPort), slog.String("push_path", pushPath))
	if err := s.echo.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *notifierServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down notification worker")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
