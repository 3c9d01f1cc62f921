package task

import "context"

type TaskRepository interface {
	// ListBySpace returns tasks of a space ordered by id.
	ListBySpace(ctx context.Context, spaceID string, filter TaskFilter) ([]Task, error)
	GetByID(ctx context.Context, spaceID string, id int64) (Task, error)
	// Upsert inserts when ID is zero, otherwise updates the row in place.
	Upsert(ctx context.Context, t Task) (Task, error)
	Delete(ctx context.Context, spaceID string, id int64) error
}
