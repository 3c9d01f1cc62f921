package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// due_date is rendered back as the literal YYYY-MM-DD string, an empty string when unset.
const taskColumns = `id, space_id, title, description, status, priority,
	COALESCE(to_char(due_date, 'YYYY-MM-DD'), ''), created_at, assignee_id, completed_at, updated_at`

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID, &t.SpaceID, &t.Title, &t.Description, &t.Status, &t.Priority,
		&t.DueDate, &t.CreatedAt, &t.AssigneeID, &t.CompletedAt, &t.UpdatedAt,
	)
	return t, err
}

func nullableDate(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ListBySpace implements task.TaskRepository.
func (r *taskRepositoryImpl) ListBySpace(ctx context.Context, spaceID string, filter task.TaskFilter) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	var sb strings.Builder
	sb.WriteString(`SELECT ` + taskColumns + ` FROM tasks WHERE space_id = $1`)
	args := []interface{}{spaceID}

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		fmt.Fprintf(&sb, " AND status = $%d", len(args))
	}
	if filter.Priority != nil {
		args = append(args, string(*filter.Priority))
		fmt.Fprintf(&sb, " AND priority = $%d", len(args))
	}
	if filter.AssigneeID != nil {
		if *filter.AssigneeID == "" {
			sb.WriteString(" AND assignee_id IS NULL")
		} else {
			args = append(args, *filter.AssigneeID)
			fmt.Fprintf(&sb, " AND assignee_id::text = $%d", len(args))
		}
	}
	sb.WriteString(" ORDER BY id")

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks of space %s: %w", spaceID, err)
	}
	defer rows.Close()

	tasks := make([]task.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// GetByID implements task.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, spaceID string, id int64) (task.Task, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND space_id = $2`

	t, err := scanTask(q.QueryRow(ctx, query, id, spaceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task with id %d: %w", id, err)
	}
	return t, nil
}

// Upsert implements task.TaskRepository.
func (r *taskRepositoryImpl) Upsert(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	if t.ID == 0 {
		query := `
			INSERT INTO tasks (space_id, title, description, status, priority, due_date, assignee_id, completed_at, created_at)
			VALUES ($1, $2, $3, $4, $5, $6::date, $7::uuid, $8, COALESCE($9, NOW()))
			RETURNING ` + taskColumns

		created, err := scanTask(q.QueryRow(ctx, query,
			t.SpaceID, t.Title, t.Description, string(t.Status), string(t.Priority),
			nullableDate(t.DueDate), t.AssigneeID, t.CompletedAt, t.CreatedAt,
		))
		if err != nil {
			return task.Task{}, fmt.Errorf("failed to insert task: %w", err)
		}
		return created, nil
	}

	query := `
		UPDATE tasks
		SET title = $3, description = $4, status = $5, priority = $6, due_date = $7::date,
			assignee_id = $8::uuid, completed_at = $9, updated_at = NOW()
		WHERE id = $1 AND space_id = $2
		RETURNING ` + taskColumns

	updated, err := scanTask(q.QueryRow(ctx, query,
		t.ID, t.SpaceID, t.Title, t.Description, string(t.Status), string(t.Priority),
		nullableDate(t.DueDate), t.AssigneeID, t.CompletedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to update task with id %d: %w", t.ID, err)
	}
	return updated, nil
}

// Delete implements task.TaskRepository.
func (r *taskRepositoryImpl) Delete(ctx context.Context, spaceID string, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND space_id = $2`, id, spaceID)
	if err != nil {
		return fmt.Errorf("failed to delete task with id %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}
