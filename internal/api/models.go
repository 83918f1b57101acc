package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// CreateTaskRequest defines the payload for POST /api/tasks.
// Read-only and unknown fields in the body are ignored.
type CreateTaskRequest struct {
	Title     string `json:"title"     validate:"required"`
	Completed *bool  `json:"completed"`
}

// UpdateTaskRequest defines the payload for PATCH /api/tasks/{id}.
// Absent (or null) fields are left unchanged.
type UpdateTaskRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// ReplaceTaskRequest defines the payload for PUT /api/tasks/{id}.
// Title is required; an absent completed keeps its stored value.
type ReplaceTaskRequest struct {
	Title     string `json:"title"     validate:"required"`
	Completed *bool  `json:"completed"`
}

// TaskResponse is the JSON representation of a task.
type TaskResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

func (req UpdateTaskRequest) patch() domain.TaskPatch {
	return domain.TaskPatch{Title: req.Title, Completed: req.Completed}
}

func (req ReplaceTaskRequest) patch() domain.TaskPatch {
	title := req.Title
	return domain.TaskPatch{Title: &title, Completed: req.Completed}
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt.UTC(),
	}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
