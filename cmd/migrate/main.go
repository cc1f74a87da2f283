// Command migrate applies, rolls back or lists the database migrations.
package main

import (
	"context"
	"fmt"
	"os"

	"knect/config"
	logs "knect/internal/infra/log"
	"knect/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := run(context.Background(), os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string) error {
	var migrator *postgres.Migrator
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewMigrator,
		),
		fx.Populate(&migrator),
	)
	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start")
	}
	defer func() {
		_ = app.Stop(ctx)
	}()

	switch command {
	case "up":
		return migrator.Up(ctx)
	case "down":
		return migrator.Down(ctx)
	case "status":
		return migrator.Status(ctx)
	default:
		printUsage()

		return errors.Errorf("unknown command %q", command)
	}
}

func printUsage() {
	fmt.Println("Usage: migrate <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up      Apply all pending migrations")
	fmt.Println("  down    Roll back the most recent migration")
	fmt.Println("  status  List migrations and whether they are applied")
}
