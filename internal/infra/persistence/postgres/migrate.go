package postgres

import (
	"context"
	"log/slog"

	"knect/internal/errors"
	"knect/migrations"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// Migrator applies the embedded goose migrations to the database behind db.
type Migrator struct {
	provider *goose.Provider
	logger   *slog.Logger
}

// NewMigrator builds a goose provider over the pool of db.
func NewMigrator(db *gorm.DB, logger *slog.Logger) (*Migrator, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.FS)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create goose provider")
	}

	return &Migrator{provider: provider, logger: logger}, nil
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	for _, result := range results {
		m.logger.InfoContext(ctx, "Migration applied",
			slog.Int64("version", result.Source.Version),
			slog.Duration("duration", result.Duration),
		)
	}

	return nil
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	result, err := m.provider.Down(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to roll back migration")
	}

	m.logger.InfoContext(ctx, "Migration rolled back", slog.Int64("version", result.Source.Version))

	return nil
}

// Status logs the state of every known migration.
func (m *Migrator) Status(ctx context.Context) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read migration status")
	}

	for _, status := range statuses {
		m.logger.InfoContext(ctx, "Migration status",
			slog.Int64("version", status.Source.Version),
			slog.String("state", string(status.State)),
		)
	}

	return nil
}
