package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidOAuthState):
		Unauthorized(w, "Invalid OAuth state")
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Email not verified")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidID):
		BadRequest(w, "Invalid employee ID", nil)

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrSpaceIDRequired):
		BadRequest(w, "Space ID is required", nil)
	case errors.Is(err, task.ErrInvalidTaskID):
		BadRequest(w, "Invalid task ID", nil)
	case errors.Is(err, task.ErrAssigneeNotFound):
		ValidationError(w, map[string]string{"assignee_id": err.Error()})

	// Calendar query errors
	case errors.Is(err, calendar.ErrInvalidMonth):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, calendar.ErrInvalidWeekStart):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
