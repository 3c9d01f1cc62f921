package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
)

type taskRepositoryImpl struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]task.Task
	now    func() time.Time
}

// NewTaskRepository returns a task store kept in process memory. Seed tasks
// keep their IDs; new tasks are numbered after the highest seeded ID.
func NewTaskRepository(seed ...task.Task) task.TaskRepository {
	r := &taskRepositoryImpl{
		tasks: make(map[int64]task.Task),
		now:   time.Now,
	}
	for _, t := range seed {
		if t.ID == 0 {
			r.nextID++
			t.ID = r.nextID
		}
		if t.ID > r.nextID {
			r.nextID = t.ID
		}
		r.tasks[t.ID] = t
	}
	return r
}

// ListBySpace implements task.TaskRepository.
func (r *taskRepositoryImpl) ListBySpace(ctx context.Context, spaceID string, filter task.TaskFilter) ([]task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]task.Task, 0)
	for _, t := range r.tasks {
		if t.SpaceID != spaceID {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && t.Priority != *filter.Priority {
			continue
		}
		if filter.AssigneeID != nil && t.Assignee() != *filter.AssigneeID {
			continue
		}
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// GetByID implements task.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, spaceID string, id int64) (task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok || t.SpaceID != spaceID {
		return task.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// Upsert implements task.TaskRepository.
func (r *taskRepositoryImpl) Upsert(ctx context.Context, t task.Task) (task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if t.ID == 0 {
		r.nextID++
		t.ID = r.nextID
		if t.CreatedAt == nil {
			t.CreatedAt = &now
		}
	} else {
		existing, ok := r.tasks[t.ID]
		if !ok || existing.SpaceID != t.SpaceID {
			return task.Task{}, task.ErrTaskNotFound
		}
		t.CreatedAt = existing.CreatedAt
	}
	t.UpdatedAt = now
	r.tasks[t.ID] = t
	return t, nil
}

// Delete implements task.TaskRepository.
func (r *taskRepositoryImpl) Delete(ctx context.Context, spaceID string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok || t.SpaceID != spaceID {
		return task.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}
