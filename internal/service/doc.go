// Package service contains the application-specific use cases for the task
// list. It sits between the HTTP handlers in internal/api and the storage
// interfaces defined in internal/store.
//
// Services receive their dependencies through constructor injection and never
// depend on a concrete storage implementation. Expected conditions such as a
// missing task or an invalid title are returned as sentinel or validation
// errors; everything else is wrapped in TaskServiceError so the API layer can
// map it to a 500 without leaking details.
package service
