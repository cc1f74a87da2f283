package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"knect/config"
	"knect/internal/client/backend"
	"knect/internal/client/location"
	"knect/internal/client/protocol"
	"knect/internal/client/session"
	logs "knect/internal/infra/log"

	"github.com/pkg/errors"
)

// runtime wires the client core for one invocation.
type runtime struct {
	cfg     *config.ClientConfig
	logger  *slog.Logger
	backend *backend.Client
	store   *session.Store
	started bool
}

// loadConfig reads knectctl.yaml. Only a missing file falls back to the defaults; a file that
// cannot be read or parsed is an error.
func loadConfig() (*config.ClientConfig, error) {
	return resolveConfig(config.NewClient())
}

func resolveConfig(cfg *config.ClientConfig, err error) (*config.ClientConfig, error) {
	switch {
	case err == nil:
		return cfg, nil
	case errors.Is(err, config.ErrConfigNotFound):
		return config.DefaultClientConfig(), nil
	default:
		return nil, errors.Wrap(err, "load knectctl config")
	}
}

func newRuntime(cfg *config.ClientConfig) (*runtime, error) {
	logger, err := logs.Build(os.Stderr, cfg.Log)
	if err != nil {
		return nil, err
	}

	client, err := backend.NewClient(backend.Params{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.HTTPTimeout,
		Tokens:  backend.NewFileTokenStore(cfg.SessionPath),
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg, logger: logger, backend: client}
	rt.store = session.New(session.Params{
		Auth:        client,
		Profiles:    client,
		Connections: client,
		Locator:     rt.locator(cfg.Location.Permitted, cfg.Location.Latitude, cfg.Location.Longitude, cfg.Location.Timeout),
		Logger:      logger,
	})

	return rt, nil
}

func (rt *runtime) locator(permitted bool, lat, lng *float64, timeout time.Duration) *location.Resolver {
	return location.NewResolver(location.Params{
		Permissions: location.StaticPermissions(permitted),
		Provider:    location.NewStaticProvider(lat, lng),
		Timeout:     timeout,
		Logger:      rt.logger,
	})
}

// start loads the session state once per invocation.
func (rt *runtime) start(ctx context.Context) error {
	if rt.started {
		return nil
	}
	if err := rt.store.Start(ctx); err != nil {
		return err
	}
	rt.started = true

	return nil
}

func (rt *runtime) scanner(locator protocol.Locator) *protocol.Scanner {
	return protocol.NewScanner(protocol.Params{
		Identity:    rt.store,
		Profiles:    rt.backend,
		Connections: rt.backend,
		Locator:     locator,
		Logger:      rt.logger,
	})
}

func (rt *runtime) close() {
	rt.store.Stop()
}
