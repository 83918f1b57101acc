package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestTaskServiceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *TaskServiceError
		expected string
	}{
		{
			name: "with underlying error",
			err: &TaskServiceError{
				Operation: "create_task",
				Message:   "failed to save task",
				Err:       errors.New("database connection failed"),
			},
			expected: "task service create_task failed: failed to save task: database connection failed",
		},
		{
			name: "without underlying error",
			err: &TaskServiceError{
				Operation: "create_service",
				Message:   "task store cannot be nil",
			},
			expected: "task service create_service failed: task store cannot be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestNewTaskServiceError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, NewTaskServiceError("get_task", "failed", nil))
	})

	t.Run("not found is returned as sentinel", func(t *testing.T) {
		wrapped := store.NewStoreError("task", "get", "query failed", store.ErrTaskNotFound)
		err := NewTaskServiceError("get_task", "failed", wrapped)
		assert.Same(t, ErrTaskNotFound, err)
	})

	t.Run("validation error is returned unchanged", func(t *testing.T) {
		verr := domain.NewValidationError("title", "may not be blank", domain.ErrEmptyTitle)
		err := NewTaskServiceError("create_task", "invalid task", verr)
		assert.Same(t, verr, err)
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		cause := fmt.Errorf("connection refused")
		err := NewTaskServiceError("list_tasks", "failed to retrieve tasks", cause)

		var serviceErr *TaskServiceError
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "list_tasks", serviceErr.Operation)
		assert.ErrorIs(t, err, cause)
	})
}
