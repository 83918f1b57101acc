package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidFormat is returned when data is not in the expected format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyTitle is returned when a task title is empty after trimming.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title too long")
)

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for the given field.
// If err is nil, ErrValidation is used as the underlying error.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports ErrValidation as a match for every ValidationError so callers
// can test for the whole class of errors with errors.Is.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ValidationErrors collects several field errors into one error value.
type ValidationErrors []*ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual field errors to errors.Is and errors.As.
func (e ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(e))
	for _, fe := range e {
		errs = append(errs, fe)
	}
	return errs
}

// FieldErrors flattens a validation error into a field -> message map.
// It returns nil when err carries no field-level detail.
func FieldErrors(err error) map[string]string {
	var many ValidationErrors
	if errors.As(err, &many) {
		fields := make(map[string]string, len(many))
		for _, fe := range many {
			if fe.Field != "" {
				if _, seen := fields[fe.Field]; !seen {
					fields[fe.Field] = fe.Message
				}
			}
		}
		if len(fields) == 0 {
			return nil
		}
		return fields
	}

	var single *ValidationError
	if errors.As(err, &single) && single.Field != "" {
		return map[string]string{single.Field: single.Message}
	}
	return nil
}
