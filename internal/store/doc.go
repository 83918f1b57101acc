// Package store defines the TaskStore persistence interface and the sentinel
// errors every implementation reports. Implementations live under
// internal/platform (postgres, memory, rediscache).
package store
