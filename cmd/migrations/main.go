package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/vncsmyrnk/nominate/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/nominate/internal/config"
	"github.com/vncsmyrnk/nominate/internal/logging"
)

// Applies a single embedded migration by name (e.g. "init.up"), or every
// up migration when the name is "up".
func main() {
	if len(os.Args) < 2 {
		fatal("a migration name is required")
	}
	migrationName := os.Args[1]

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found")
	}

	cfg, err := config.Load("migrations", append([]string{"-db-driver", config.DriverPostgres}, os.Args[2:]...))
	if err != nil {
		fatal("invalid configuration", "error", err)
	}
	slog.SetDefault(logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.Postgres.ConnString())
	if err != nil {
		fatal("database connection failed", "error", err)
	}
	defer db.Close()

	if migrationName == "up" {
		if err := postgres.MigrateUp(ctx, db); err != nil {
			fatal("migrations failed", "error", err)
		}
		slog.Info("migrations executed successfully")
		return
	}

	fileContent, err := postgres.MigrationContent(migrationName)
	if err != nil {
		fatal("migration lookup failed", "name", migrationName, "error", err)
	}

	if _, err := db.ExecContext(ctx, string(fileContent)); err != nil {
		fatal("failed to execute migration", "name", migrationName, "error", err)
	}

	slog.Info("migration file executed successfully", "name", migrationName)
}

func fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}
