package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"knect/config"
	"knect/internal/delivery"
	apimiddleware "knect/internal/delivery/api/middleware"
	"knect/internal/delivery/api/router"
	"knect/internal/delivery/api/validator"
	"knect/internal/delivery/middleware"
	"knect/internal/domain/lifecycle"
	"knect/internal/domain/service"
	"knect/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// knectServer serves the REST API and the connection change stream.
type knectServer struct {
	port        int
	idleTimeout time.Duration
	logger      *slog.Logger
	echo        *echo.Echo
	changes     service.ChangeBroker
}

// ServerParams holds dependencies for the API server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Broker       service.ChangeBroker
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params.Cfg, params.Logger)

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(e)
	r.RegisterTestRoutes(e)

	srv := &knectServer{
		port:        params.Cfg.HTTP.Port,
		idleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout,
		logger:      params.Logger,
		echo:        e,
		changes:     params.Broker,
	}
	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newEcho builds the echo instance with timeouts, middleware, error handling and validation.
// Recover runs first and request ids are assigned before the request is logged.
func newEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.CORS(),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

func (s *knectServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting Knect API server", slog.String("host_port", hostPort))

	err := s.echo.StartH2CServer(hostPort, &http2.Server{IdleTimeout: s.idleTimeout})
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop ends the open change streams first; Shutdown waits for active requests and a stream
// only returns once its channel closes.
func (s *knectServer) stop(ctx context.Context) error {
	s.changes.Close()

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Knect API server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
