package employee

import (
	"context"
)

// EmployeeService defines read operations over team members
type EmployeeService interface {
	// ListEmployees lists every employee ordered by name
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
}
