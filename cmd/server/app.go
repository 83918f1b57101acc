package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/memory"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
	"github.com/phrazzld/tasks-api/internal/platform/rediscache"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/redis/go-redis/v9"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when the memory driver is selected.
	db *sql.DB
	// redis is nil when caching is disabled.
	redis *redis.Client

	taskStore   store.TaskStore
	taskService service.TaskService
}

// newApplication creates a new application instance with all dependencies initialized.
// For the postgres driver it connects and applies pending migrations before
// building the store.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	switch cfg.Database.Driver {
	case "postgres":
		app.db, err = setupAppDatabase(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		if err := postgres.RunMigrations(ctx, app.db, newGooseLogger(logger), "up"); err != nil {
			app.cleanup()
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
		app.taskStore = postgres.NewPostgresTaskStore(app.db, logger)
	case "memory":
		logger.Warn("Using in-memory task store; data is lost on restart")
		app.taskStore = memory.NewTaskStore(logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	if cfg.Cache.Enabled() {
		app.redis, err = rediscache.NewClient(ctx, cfg.Cache.RedisURL)
		if err != nil {
			app.cleanup()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		app.taskStore = rediscache.NewTaskCache(app.taskStore, app.redis, cfg.Cache.TTL, logger)
		logger.Info("Task list cache enabled", "ttl", cfg.Cache.TTL)
	}

	app.taskService, err = service.NewTaskService(app.taskStore, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns when ctx is canceled or the server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// ping reports whether the backing database is reachable.
// The memory driver is always healthy.
func (app *application) ping(ctx context.Context) error {
	if app.db == nil {
		return nil
	}
	return app.db.PingContext(ctx)
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("Error closing redis client", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
