// Package main implements the entry point for the tasks API server, a small
// JSON backend for a to-do list client.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	migrate := flag.String("migrate", "",
		"run a migration command (up, down, status, version, reset) and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *migrate); err != nil {
		log.Fatalf("tasks-api: %v", err)
	}
}

// run loads configuration and either executes a migration command or serves
// HTTP until ctx is canceled.
func run(ctx context.Context, migrateCommand string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	if migrateCommand != "" {
		return handleMigrations(ctx, cfg, logger, migrateCommand)
	}

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	slog.Info("tasks-api starting", "driver", cfg.Database.Driver, "cache_enabled", cfg.Cache.Enabled())
	return app.Run(ctx)
}
