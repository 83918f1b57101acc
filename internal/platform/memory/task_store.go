package memory

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskStore keeps tasks in a map guarded by a RWMutex.
// Callers always receive copies, never pointers into the map.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  map[uuid.UUID]domain.Task
	logger *slog.Logger
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore returns an empty TaskStore. A nil logger uses slog.Default.
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskStore{
		tasks:  make(map[uuid.UUID]domain.Task),
		logger: logger.With(slog.String("component", "memory_task_store")),
	}
}

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.ID]; exists {
		return store.NewStoreError("task", "create", "id already exists", store.ErrDuplicate)
	}
	s.tasks[task.ID] = *task

	logger.FromContextOrDefault(ctx, s.logger).
		Debug("task created", slog.String("task_id", task.ID.String()))
	return nil
}

// List implements store.TaskStore.List
func (s *TaskStore) List(_ context.Context) ([]*domain.Task, error) {
	s.mu.RLock()
	out := make([]*domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		task := t
		out = append(out, &task)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, compareNewestFirst)
	return out, nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return &t, nil
}

// Update implements store.TaskStore.Update
func (s *TaskStore) Update(ctx context.Context, id uuid.UUID, patch domain.TaskPatch) (*domain.Task, error) {
	patch = patch.Normalize()
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	t.Apply(patch)
	s.tasks[id] = t

	logger.FromContextOrDefault(ctx, s.logger).
		Debug("task updated", slog.String("task_id", id.String()))
	return &t, nil
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, id)

	logger.FromContextOrDefault(ctx, s.logger).
		Debug("task deleted", slog.String("task_id", id.String()))
	return nil
}

// compareNewestFirst orders by CreatedAt descending, then ID descending,
// matching the ORDER BY of the postgres store.
func compareNewestFirst(a, b *domain.Task) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return bytes.Compare(b.ID[:], a.ID[:])
}
