package pubsub

import (
	"context"
	"log/slog"

	"knect/config"
	"knect/internal/domain/constants"
	"knect/internal/domain/entity"
	"knect/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// discardPublisher drops connection changes when no Pub/Sub provider is configured, so scans
// still succeed without a notification worker.
type discardPublisher struct {
	logger *slog.Logger
}

func (p *discardPublisher) PublishConnectionChange(ctx context.Context, change *entity.ConnectionChange) error {
	p.logger.DebugContext(ctx, "[PubSub] No provider, connection change not forwarded",
		slog.String("event_id", change.ID),
		slog.String("connector_id", change.Connection.ConnectorID.String()),
	)

	return nil
}

func (p *discardPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the connection change publisher from the pubsub configuration and
// closes it when the application stops.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing connection change publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, connection changes stay in-process")

		return &discardPublisher{logger: logger}, nil
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		logger.Info("Forwarding connection changes over HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	default:
		logger.Info("Forwarding connection changes to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	}
}

func validate(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub: localEndpoint is required for the local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return errors.New("pubsub: projectId and topicId are required for the google provider")
		}
	default:
		return errors.Errorf("pubsub: unknown provider %q", cfg.Provider)
	}

	return nil
}
