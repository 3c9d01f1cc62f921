package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type TaskHandler interface {
	ListTasks(w http.ResponseWriter, r *http.Request)
	GetTask(w http.ResponseWriter, r *http.Request)
	CreateTask(w http.ResponseWriter, r *http.Request)
	UpdateTask(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	DeleteTask(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &taskHandlerImpl{taskService: taskService}
}

func taskIDParam(r *http.Request) (int64, error) {
	id, ok := validator.ParseID(chi.URLParam(r, "id"))
	if !ok {
		return 0, task.ErrInvalidTaskID
	}
	return id, nil
}

// parseTaskFilter reads ?status=&priority=&assignee_id= from the query.
func parseTaskFilter(r *http.Request) (task.TaskFilter, error) {
	var filter task.TaskFilter
	var errs validator.ValidationErrors
	query := r.URL.Query()

	if s := query.Get("status"); s != "" {
		status := task.Status(s)
		if !status.IsValid() {
			errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of TODO, IN_PROGRESS, DONE"})
		}
		filter.Status = &status
	}
	if p := query.Get("priority"); p != "" {
		priority := task.Priority(p)
		if !priority.IsValid() {
			errs = append(errs, validator.ValidationError{Field: "priority", Message: "priority must be one of LOW, MEDIUM, HIGH, URGENT"})
		}
		filter.Priority = &priority
	}
	if a := query.Get("assignee_id"); a != "" {
		filter.AssigneeID = &a
	}

	if len(errs) > 0 {
		return filter, errs
	}
	return filter, nil
}

// ListTasks handles GET /spaces/{spaceID}/tasks
func (h *taskHandlerImpl) ListTasks(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTaskFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.taskService.ListTasks(r.Context(), chi.URLParam(r, "spaceID"), filter)
	if err != nil {
		slog.Error("ListTasks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{TotalItems: int64(len(result))})
}

// GetTask handles GET /spaces/{spaceID}/tasks/{id}
func (h *taskHandlerImpl) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.taskService.GetTask(r.Context(), chi.URLParam(r, "spaceID"), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateTask handles POST /spaces/{spaceID}/tasks
func (h *taskHandlerImpl) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req task.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateTask decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.taskService.CreateTask(r.Context(), chi.URLParam(r, "spaceID"), req)
	if err != nil {
		slog.Error("CreateTask service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created successfully", result)
}

// UpdateTask handles PUT /spaces/{spaceID}/tasks/{id}
func (h *taskHandlerImpl) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req task.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateTask decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.taskService.UpdateTask(r.Context(), chi.URLParam(r, "spaceID"), req)
	if err != nil {
		slog.Error("UpdateTask service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task updated successfully", result)
}

// UpdateStatus handles PATCH /spaces/{spaceID}/tasks/{id}/status
func (h *taskHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req task.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.taskService.UpdateStatus(r.Context(), chi.URLParam(r, "spaceID"), req)
	if err != nil {
		slog.Error("UpdateStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task status updated successfully", result)
}

// DeleteTask handles DELETE /spaces/{spaceID}/tasks/{id}
func (h *taskHandlerImpl) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), chi.URLParam(r, "spaceID"), id); err != nil {
		slog.Error("DeleteTask service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task deleted successfully", nil)
}
