// Package domain contains the Task entity, its validation rules and the
// validation error types shared by every layer. It has no knowledge of HTTP
// or storage.
package domain
