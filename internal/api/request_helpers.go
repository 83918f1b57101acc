package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// getPathUUID extracts a UUID from the URL path parameters.
// A missing or malformed value can never name a stored task, so it is
// reported as store.ErrTaskNotFound rather than as a validation error.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, store.ErrTaskNotFound
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed id %q", store.ErrTaskNotFound, pathParam)
	}

	return id, nil
}

// decodeRequest decodes and validates the JSON body into req.
//
// Returns:
//   - nil on success
//   - a domain.ErrInvalidFormat error when the body is not a JSON object
//   - domain validation errors for wrong field types or failed validate tags
//   - *http.MaxBytesError when the body exceeds shared.MaxRequestBodyBytes
func decodeRequest(w http.ResponseWriter, r *http.Request, req interface{}) error {
	if err := shared.DecodeJSON(w, r, req); err != nil {
		return classifyDecodeError(err)
	}
	return shared.ValidateRequest(req)
}

func classifyDecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &tooLarge):
		return err
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return domain.ValidationErrors{
			domain.NewValidationError(typeErr.Field, "must be "+jsonKind(typeErr.Type), domain.ErrValidation),
		}
	case errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: truncated body", domain.ErrInvalidFormat)
	default:
		return fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
	}
}

// jsonKind names the JSON type a Go field expects.
func jsonKind(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "a boolean"
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	default:
		return "a valid value"
	}
}
