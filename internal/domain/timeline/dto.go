package timeline

import (
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/validator"
)

type TimelineRequest struct {
	Date string // YYYY-MM-DD anchor, empty means today
}

func (r *TimelineRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DayResponse struct {
	Date    string `json:"date"` // Format: "YYYY-MM-DD"
	Weekday string `json:"weekday"`
	IsToday bool   `json:"is_today"`
}

type BarResponse struct {
	Task        task.TaskResponse `json:"task"`
	StartColumn int               `json:"start_column"`
	Span        int               `json:"span"`
}

// RowResponse is one Gantt lane. Employee is nil for the unassigned lane or
// when the assignee no longer exists.
type RowResponse struct {
	AssigneeKey string                     `json:"assignee_key"`
	Employee    *employee.EmployeeResponse `json:"employee,omitempty"`
	Bars        []BarResponse              `json:"bars"`
}

type TimelineResponse struct {
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Days      []DayResponse `json:"days"`
	Rows      []RowResponse `json:"rows"`
}
