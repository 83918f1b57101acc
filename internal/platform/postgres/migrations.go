package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// MigrationTableName is the table goose uses to track applied migrations.
const MigrationTableName = "schema_migrations"

// migrationsDir is the directory inside migrationFS holding the SQL files.
const migrationsDir = "migrations"

//go:embed migrations/*.sql
var migrationFS embed.FS

// RunMigrations executes a goose command ("up", "down", "status", "version",
// "reset", ...) against db using the embedded migration files.
// A nil logger keeps goose's default stdout logger.
func RunMigrations(ctx context.Context, db *sql.DB, logger goose.Logger, command string, args ...string) error {
	goose.SetBaseFS(migrationFS)
	goose.SetTableName(MigrationTableName)
	if logger != nil {
		goose.SetLogger(logger)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.RunContext(ctx, command, db, migrationsDir, args...); err != nil {
		return fmt.Errorf("goose %s failed: %w", command, err)
	}
	return nil
}
