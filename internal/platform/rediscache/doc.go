// Package rediscache wraps a store.TaskStore with a Redis read-through cache
// for the task list. Writes bump a version key and evict the cached list, and
// a list read is only written back if the version did not move meanwhile.
// Redis being unavailable never fails a request; the wrapped store is
// consulted instead.
package rediscache
