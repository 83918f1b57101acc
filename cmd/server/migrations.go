package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
)

// migrationCommands lists the goose commands accepted by -migrate.
var migrationCommands = map[string]bool{
	"up":      true,
	"down":    true,
	"status":  true,
	"version": true,
	"reset":   true,
}

// slogGooseLogger adapts the goose logger interface to use slog
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements the goose.Logger Printf method by forwarding messages to slog.Info
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf implements the goose.Logger Fatalf method by forwarding error messages to slog.Error.
// Unlike the standard Fatalf it does not exit; goose returns the error to the caller.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

func newGooseLogger(logger *slog.Logger) *slogGooseLogger {
	return &slogGooseLogger{logger: logger.With("component", "migrations")}
}

// handleMigrations runs a single goose command against the configured
// PostgreSQL database and returns.
func handleMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger, command string) error {
	if !migrationCommands[command] {
		return fmt.Errorf("unknown migration command %q", command)
	}
	if cfg.Database.Driver != "postgres" {
		return fmt.Errorf("migrations require the postgres driver, got %q", cfg.Database.Driver)
	}

	db, err := setupAppDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing database connection", "error", err)
		}
	}()

	logger.Info("Running migration command", "command", command)
	if err := postgres.RunMigrations(ctx, db, newGooseLogger(logger), command); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Migration command completed", "command", command)
	return nil
}
