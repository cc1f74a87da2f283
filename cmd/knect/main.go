package main

import (
	"context"
	"log/slog"
	"os"

	"knect/config"
	"knect/internal/delivery"
	"knect/internal/delivery/api"
	"knect/internal/delivery/api/middleware"
	"knect/internal/delivery/api/router/handler"
	"knect/internal/domain/constants"
	"knect/internal/infra/auth"
	logs "knect/internal/infra/log"
	"knect/internal/infra/notification"
	"knect/internal/infra/persistence/postgres"
	"knect/internal/infra/pubsub"
	"knect/internal/infra/qrcode"
	"knect/internal/infra/realtime"
	"knect/internal/infra/storage"
	"knect/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			migrateOnStart,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		postgres.NewMigrator,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewProfileRepository,
			postgres.NewConnectionRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			notification.New,
			qrcode.New,
			storage.New,
			realtime.NewBroker,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewProfileService,
			impl.NewConnectionService,
			impl.NewPassService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewConnectionHandler,
			handler.NewPassHandler,
			handler.NewDeviceHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// migrateOnStart applies pending migrations in develop. Other environments run cmd/migrate.
func migrateOnStart(lc fx.Lifecycle, cfg *config.Config, migrator *postgres.Migrator) {
	if cfg.Env.Env != constants.EnvDevelop {
		return
	}

	lc.Append(fx.Hook{
		OnStart: migrator.Up,
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
