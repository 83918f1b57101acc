package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("title", "may not be blank", ErrEmptyTitle)
	assert.Equal(t, "invalid title: may not be blank", err.Error())
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.ErrorIs(t, err, ErrValidation)

	wrapped := fmt.Errorf("create task: %w", err)
	assert.ErrorIs(t, wrapped, ErrValidation)

	noField := NewValidationError("", "bad input", nil)
	assert.Equal(t, "bad input", noField.Error())
	assert.ErrorIs(t, noField, ErrValidation)
}

func TestFieldErrors(t *testing.T) {
	t.Parallel()

	t.Run("single", func(t *testing.T) {
		err := fmt.Errorf("wrap: %w", NewValidationError("completed", "must be a boolean", ErrInvalidFormat))
		assert.Equal(t, map[string]string{"completed": "must be a boolean"}, FieldErrors(err))
	})

	t.Run("multiple keeps first message per field", func(t *testing.T) {
		err := ValidationErrors{
			NewValidationError("title", "required field", nil),
			NewValidationError("title", "too long", nil),
			NewValidationError("completed", "must be a boolean", nil),
		}
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, map[string]string{
			"title":     "required field",
			"completed": "must be a boolean",
		}, FieldErrors(err))
	})

	t.Run("no field detail", func(t *testing.T) {
		assert.Nil(t, FieldErrors(errors.New("boom")))
		assert.Nil(t, FieldErrors(NewValidationError("", "bad", nil)))
	})
}
