package calendar

import (
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/validator"
)

// MonthRequest holds the query parameters of the calendar view.
type MonthRequest struct {
	Month         string // YYYY-MM, empty means the current month
	WeekStart     string // sunday or monday, empty means the configured default
	HideCompleted bool
}

func (r *MonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month != "" {
		if _, ok := validator.IsValidMonth(r.Month); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: ErrInvalidMonth.Error(),
			})
		}
	}
	if r.WeekStart != "" && !WeekStart(r.WeekStart).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: ErrInvalidWeekStart.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CellResponse struct {
	Date           string              `json:"date"` // Format: "YYYY-MM-DD"
	IsCurrentMonth bool                `json:"is_current_month"`
	IsToday        bool                `json:"is_today"`
	Tasks          []task.TaskResponse `json:"tasks"`
}

// MonthGridResponse is the month view split into rows of seven days
type MonthGridResponse struct {
	Month       string           `json:"month"` // Format: "YYYY-MM"
	WeekStart   WeekStart        `json:"week_start"`
	Weeks       [][]CellResponse `json:"weeks"`
	Unscheduled int              `json:"unscheduled"` // tasks without a due date
}
