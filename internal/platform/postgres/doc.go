// Package postgres implements store.TaskStore on PostgreSQL through the pgx
// database/sql driver. It owns the embedded goose migrations and maps
// PostgreSQL error codes onto the store sentinel errors.
package postgres
