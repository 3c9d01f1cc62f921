package task

import (
	"time"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/validator"
)

type TaskFilter struct {
	Status     *Status
	Priority   *Priority
	AssigneeID *string
}

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date,omitempty"`
	AssigneeID  *string `json:"assignee_id,omitempty"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateTaskFields(r.Title, r.Status, r.Priority, r.DueDate)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTaskRequest struct {
	ID          int64   `json:"-"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date,omitempty"`
	AssigneeID  *string `json:"assignee_id,omitempty"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}
	errs = append(errs, validateTaskFields(r.Title, r.Status, r.Priority, r.DueDate)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	ID     int64  `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}
	if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of TODO, IN_PROGRESS, DONE",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateTaskFields(title, status, priority string, dueDate *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if len(title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 255 characters",
		})
	}
	if !Status(status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of TODO, IN_PROGRESS, DONE",
		})
	}
	if !Priority(priority).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of LOW, MEDIUM, HIGH, URGENT",
		})
	}
	if dueDate != nil && *dueDate != "" {
		if _, ok := validator.IsValidDate(*dueDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "due_date",
				Message: "due_date must be in YYYY-MM-DD format",
			})
		}
	}

	return errs
}

type TaskResponse struct {
	ID          int64    `json:"id"`
	SpaceID     string   `json:"space_id"`
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
	DueDate     *string  `json:"due_date,omitempty"`
	CreatedAt   *string  `json:"created_at,omitempty"`
	AssigneeID  *string  `json:"assignee_id,omitempty"`
	CompletedAt *string  `json:"completed_at,omitempty"`
	UpdatedAt   string   `json:"updated_at"`
}

// ToResponse converts a Task into its JSON shape.
func ToResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		SpaceID:     t.SpaceID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		AssigneeID:  t.AssigneeID,
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
	if t.DueDate != "" {
		due := t.DueDate
		resp.DueDate = &due
	}
	if t.CreatedAt != nil {
		created := t.CreatedAt.Format(time.RFC3339)
		resp.CreatedAt = &created
	}
	if t.CompletedAt != nil {
		completed := t.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completed
	}
	return resp
}

// ToResponses converts a slice of tasks, never returning nil.
func ToResponses(tasks []Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, ToResponse(t))
	}
	return out
}
