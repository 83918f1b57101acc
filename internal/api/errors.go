package api

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var tooLarge *http.MaxBytesError

	switch {
	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var tooLarge *http.MaxBytesError

	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, store.ErrDuplicate):
		return "Task already exists"

	case errors.As(err, &tooLarge):
		return "Request body too large"

	case errors.Is(err, domain.ErrValidation):
		return validationMessage(err)

	case errors.Is(err, domain.ErrInvalidFormat):
		return "Invalid request format"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid task data"

	default:
		return "An unexpected error occurred"
	}
}

// validationMessage summarizes field errors. A single field is named in the
// message; several fields fall back to a generic one.
func validationMessage(err error) string {
	fields := domain.FieldErrors(err)
	switch len(fields) {
	case 0:
		return "Validation error"
	case 1:
		for field, msg := range fields {
			return fmt.Sprintf("Invalid %s: %s", field, msg)
		}
	}

	names := make([]string, 0, len(fields))
	for field := range fields {
		names = append(names, field)
	}
	sort.Strings(names)
	return fmt.Sprintf("Validation error on fields: %v", names)
}

// HandleAPIError writes the error response for err. When message is empty
// the safe message for the error type is used. Validation failures carry
// their field messages in the response body.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}

	var opts []shared.ResponseOption
	if status == http.StatusBadRequest {
		if fields := domain.FieldErrors(err); fields != nil {
			opts = append(opts, shared.WithFieldErrors(fields))
		}
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
