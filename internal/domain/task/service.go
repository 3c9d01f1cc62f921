package task

import "context"

// TaskService defines CRUD operations over the tasks of a space
type TaskService interface {
	// ListTasks lists the tasks of a space with optional filters
	ListTasks(ctx context.Context, spaceID string, filter TaskFilter) ([]TaskResponse, error)

	// GetTask returns a single task
	GetTask(ctx context.Context, spaceID string, id int64) (TaskResponse, error)

	// CreateTask creates a new task in a space
	CreateTask(ctx context.Context, spaceID string, req CreateTaskRequest) (TaskResponse, error)

	// UpdateTask replaces the editable fields of a task
	UpdateTask(ctx context.Context, spaceID string, req UpdateTaskRequest) (TaskResponse, error)

	// UpdateStatus moves a task between TODO, IN_PROGRESS and DONE
	UpdateStatus(ctx context.Context, spaceID string, req UpdateStatusRequest) (TaskResponse, error)

	// DeleteTask removes a task
	DeleteTask(ctx context.Context, spaceID string, id int64) error
}
