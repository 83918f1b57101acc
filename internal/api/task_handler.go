package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/service"
)

// TaskIDParam is the chi URL parameter holding the task ID.
const TaskIDParam = "id"

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if taskService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskService cannot be nil for TaskHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /api/tasks requests
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// CreateTask handles POST /api/tasks requests
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := decodeRequest(w, r, &req); err != nil {
		log.Debug("invalid create task request", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}

	completed := req.Completed != nil && *req.Completed
	task, err := h.taskService.CreateTask(r.Context(), req.Title, completed)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// GetTask handles GET /api/tasks/{id} requests
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, TaskIDParam)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask handles PATCH /api/tasks/{id} requests.
// Only the fields present in the body change.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.existingTaskID(w, r)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := decodeRequest(w, r, &req); err != nil {
		log.Debug("invalid update task request",
			slog.String("task_id", id.String()),
			slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, req.patch())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// ReplaceTask handles PUT /api/tasks/{id} requests
func (h *TaskHandler) ReplaceTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.existingTaskID(w, r)
	if !ok {
		return
	}

	var req ReplaceTaskRequest
	if err := decodeRequest(w, r, &req); err != nil {
		log.Debug("invalid replace task request",
			slog.String("task_id", id.String()),
			slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, req.patch())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// existingTaskID resolves the path id and confirms the task exists, so an
// unknown id is reported as 404 before the body is parsed. It writes the
// error response itself and returns false on failure.
func (h *TaskHandler) existingTaskID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := getPathUUID(r, TaskIDParam)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return uuid.Nil, false
	}

	if _, err := h.taskService.GetTask(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return uuid.Nil, false
	}

	return id, true
}

// DeleteTask handles DELETE /api/tasks/{id} requests
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, TaskIDParam)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondNoContent(w)
}
