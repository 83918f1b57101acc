package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Every method is a single-row atomic operation.
type TaskStore interface {
	// Create saves a new task. The task must already carry its ID and
	// CreatedAt; implementations validate it before writing.
	// Returns validation errors if the task data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// List returns every task ordered by CreatedAt descending, ties broken
	// by ID descending. Returns an empty, non-nil slice when there are none.
	List(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Update applies the non-nil fields of patch to the task and returns the
	// stored result. An empty patch returns the current task unchanged.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, id uuid.UUID, patch domain.TaskPatch) (*domain.Task, error)

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
