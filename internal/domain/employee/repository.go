package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetByUserID returns the employee linked to a login account.
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	// List returns every employee ordered by full name.
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
}
