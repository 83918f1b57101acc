package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*MockTaskStore, TaskService) {
	t.Helper()
	mockStore := new(MockTaskStore)
	svc, err := NewTaskService(mockStore, nil)
	require.NoError(t, err)
	return mockStore, svc
}

func sampleTask() *domain.Task {
	return &domain.Task{
		ID:        uuid.New(),
		Title:     "Buy milk",
		CreatedAt: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestNewTaskService(t *testing.T) {
	svc, err := NewTaskService(nil, nil)
	assert.Nil(t, svc)

	var serviceErr *TaskServiceError
	require.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, "create_service", serviceErr.Operation)
}

func TestTaskService_ListTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("returns tasks from store", func(t *testing.T) {
		mockStore, svc := newTestService(t)
		expected := []*domain.Task{sampleTask(), sampleTask()}
		mockStore.On("List", ctx).Return(expected, nil)

		tasks, err := svc.ListTasks(ctx)
		require.NoError(t, err)
		assert.Equal(t, expected, tasks)
		mockStore.AssertExpectations(t)
	})

	t.Run("nil from store becomes empty slice", func(t *testing.T) {
		mockStore, svc := newTestService(t)
		mockStore.On("List", ctx).Return([]*domain.Task(nil), nil)

		tasks, err := svc.ListTasks(ctx)
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		mockStore, svc := newTestService(t)
		cause := errors.New("connection refused")
		mockStore.On("List", ctx).Return(nil, cause)

		_, err := svc.ListTasks(ctx)
		var serviceErr *TaskServiceError
		require.True(t, errors.As(err, &serviceErr))
		assert.ErrorIs(t, err, cause)
	})
}

func TestTaskService_CreateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("creates trimmed task", func(t *testing.T) {
		mockStore, svc := newTestService(t)
		mockStore.On("Create", ctx, mock.MatchedBy(func(task *domain.Task) bool {
			return task.Title == "Buy milk" && !task.Completed && task.ID != uuid.Nil
		})).Return(nil)

		task, err := svc.CreateTask(ctx, "  Buy milk  ", false)
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", task.Title)
		assert.False(t, task.CreatedAt.IsZero())
		mockStore.AssertExpectations(t)
	})

	t.Run("completed flag is honored", func(t *testing.T) {
		mockStore, svc := newTestService(t)
		mockStore.On("Create", ctx, mock.Anything).Return(nil)

		task, err := svc.CreateTask(ctx, "Done already", true)
		require.NoError(t, err)
		assert.True(t, task.Completed)
	})

	t.Run("blank title never reaches store", func(t *testing.T) {
		mockStore, svc := newTestService(t)

		_, err := svc.CreateTask(ctx, "   ", false)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, map[string]string{"title": "may not be blank"}, domain.FieldErrors(err))
		mockStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		mockStore, svc := newTestService(t)
		mockStore.On("Create", ctx, mock.Anything).Return(errors.New("disk full"))

		_, err := svc.CreateTask(ctx, "Buy milk", false)
		var serviceErr *TaskServiceError
		assert.True(t, errors.As(err, &serviceErr))
	})
}

func TestTaskService_GetTask(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mockStore, svc := newTestService(t)
		expected := sampleTask()
		mockStore.On("GetByID", ctx, expected.ID).Return(expected, nil)

		task, err := svc.GetTask(ctx, expected.ID)
		require.NoError(t, err)
		assert.Equal(t, expected, task)
	})

	t.Run("not found", func(t *testing.T) {
		mockStore, svc := newTestService(t)
		id := uuid.New()
		mockStore.On("GetByID", ctx, id).Return(nil, store.ErrTaskNotFound)

		_, err := svc.GetTask(ctx, id)
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})
}

func TestTaskService_UpdateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes patch before store", func(t *testing.T) {
		mockStore, svc := newTestService(t)
		expected := sampleTask()
		mockStore.On("Update", ctx, expected.ID, mock.MatchedBy(func(p domain.TaskPatch) bool {
			return p.Title != nil && *p.Title == "Buy milk" && p.Completed == nil
		})).Return(expected, nil)

		title := "  Buy milk "
		task, err := svc.UpdateTask(ctx, expected.ID, domain.TaskPatch{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, expected, task)
		mockStore.AssertExpectations(t)
	})

	t.Run("too long title never reaches store", func(t *testing.T) {
		mockStore, svc := newTestService(t)
		long := strings.Repeat("a", domain.MaxTitleLength+1)

		_, err := svc.UpdateTask(ctx, uuid.New(), domain.TaskPatch{Title: &long})
		assert.ErrorIs(t, err, domain.ErrTitleTooLong)
		mockStore.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		mockStore, svc := newTestService(t)
		id := uuid.New()
		done := true
		mockStore.On("Update", ctx, id, mock.Anything).Return(nil, store.ErrTaskNotFound)

		_, err := svc.UpdateTask(ctx, id, domain.TaskPatch{Completed: &done})
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes", func(t *testing.T) {
		mockStore, svc := newTestService(t)
		id := uuid.New()
		mockStore.On("Delete", ctx, id).Return(nil)

		assert.NoError(t, svc.DeleteTask(ctx, id))
		mockStore.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockStore, svc := newTestService(t)
		id := uuid.New()
		mockStore.On("Delete", ctx, id).Return(store.ErrTaskNotFound)

		assert.ErrorIs(t, svc.DeleteTask(ctx, id), ErrTaskNotFound)
	})
}
