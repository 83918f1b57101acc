package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskService provides task-related operations
type TaskService interface {
	// ListTasks returns every task, newest first. The result is never nil.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// CreateTask creates and persists a new task
	CreateTask(ctx context.Context, title string, completed bool) (*domain.Task, error)

	// GetTask retrieves a task by its ID
	GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// UpdateTask applies the fields set in patch and returns the stored result
	UpdateTask(ctx context.Context, id uuid.UUID, patch domain.TaskPatch) (*domain.Task, error)

	// DeleteTask removes a task permanently
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewTaskService creates a new TaskService
// It returns an error if the task store is nil.
func NewTaskService(tasks store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if tasks == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "task store cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		tasks:  tasks,
		logger: logger.With("component", "task_service"),
	}, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.tasks.List(ctx)
	if err != nil {
		log.Error("failed to list tasks", "error", err)
		return nil, NewTaskServiceError("list_tasks", "failed to retrieve tasks", err)
	}
	if tasks == nil {
		tasks = make([]*domain.Task, 0)
	}

	return tasks, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(ctx context.Context, title string, completed bool) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(title, completed)
	if err != nil {
		log.Debug("rejected invalid task", "error", err)
		return nil, NewTaskServiceError("create_task", "invalid task", err)
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		log.Error("failed to save task",
			"error", err,
			"task_id", task.ID)
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created", "task_id", task.ID)
	return task, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if !store.IsNotFoundError(err) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to get task",
				"error", err,
				"task_id", id)
		}
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}
	return task, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id uuid.UUID,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	patch = patch.Normalize()
	if err := patch.Validate(); err != nil {
		log.Debug("rejected invalid task update", "error", err, "task_id", id)
		return nil, err
	}

	task, err := s.tasks.Update(ctx, id, patch)
	if err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to update task",
				"error", err,
				"task_id", id)
		}
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	log.Info("task updated", "task_id", id)
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.tasks.Delete(ctx, id); err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to delete task",
				"error", err,
				"task_id", id)
		}
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	log.Info("task deleted", "task_id", id)
	return nil
}
