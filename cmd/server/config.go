package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/config"
)

// loadAppConfig loads the application configuration from defaults, an
// optional config file and environment variables.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver)

	if cfg.Database.URL != "" {
		slog.Debug("Database configuration", "url_present", true)
	}

	return cfg, nil
}
