// Package memory provides an in-process implementation of store.TaskStore.
// It backs the "memory" database driver used for local development and
// the HTTP scenario tests. Data does not survive a restart.
package memory
