// Package testdb provides helpers for PostgreSQL integration tests.
//
// Tests using it should carry the `integration` build tag and are skipped
// when neither DATABASE_URL nor TASKS_TEST_DB_URL is set.
package testdb
