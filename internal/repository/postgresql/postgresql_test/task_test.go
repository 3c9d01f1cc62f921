package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepository_Lifecycle(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	employees := postgresql.NewEmployeeRepository(testDB.DB)
	repo := postgresql.NewTaskRepository(testDB.DB)

	andi, err := employees.Create(ctx, employee.Employee{FullName: "Andi Wijaya"})
	require.NoError(t, err)

	created := time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)
	saved, err := repo.Upsert(ctx, task.Task{
		SpaceID:    "space-1",
		Title:      "Fix login",
		Status:     task.StatusTodo,
		Priority:   task.PriorityHigh,
		DueDate:    "2024-01-08",
		CreatedAt:  &created,
		AssigneeID: &andi.ID,
	})
	require.NoError(t, err)
	assert.Positive(t, saved.ID)
	assert.Equal(t, "2024-01-08", saved.DueDate)
	require.NotNil(t, saved.CreatedAt)
	assert.True(t, created.Equal(*saved.CreatedAt))
	assert.Equal(t, andi.ID, saved.Assignee())

	undated, err := repo.Upsert(ctx, task.Task{SpaceID: "space-1", Title: "Backlog", Status: task.StatusTodo, Priority: task.PriorityLow})
	require.NoError(t, err)
	assert.Empty(t, undated.DueDate)
	assert.NotNil(t, undated.CreatedAt)

	completed := time.Date(2024, 1, 9, 12, 0, 0, 0, time.UTC)
	saved.Status = task.StatusDone
	saved.CompletedAt = &completed
	updated, err := repo.Upsert(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, task.StatusDone, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	assert.True(t, completed.Equal(*updated.CompletedAt))

	got, err := repo.GetByID(ctx, "space-1", saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fix login", got.Title)

	_, err = repo.GetByID(ctx, "space-2", saved.ID)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)

	require.NoError(t, repo.Delete(ctx, "space-1", undated.ID))
	assert.ErrorIs(t, repo.Delete(ctx, "space-1", undated.ID), task.ErrTaskNotFound)
}

func TestTaskRepository_ListBySpaceFilters(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	employees := postgresql.NewEmployeeRepository(testDB.DB)
	repo := postgresql.NewTaskRepository(testDB.DB)

	budi, err := employees.Create(ctx, employee.Employee{FullName: "Budi Santoso"})
	require.NoError(t, err)

	seed := []task.Task{
		{SpaceID: "space-1", Title: "a", Status: task.StatusTodo, Priority: task.PriorityLow, AssigneeID: &budi.ID},
		{SpaceID: "space-1", Title: "b", Status: task.StatusDone, Priority: task.PriorityHigh},
		{SpaceID: "space-1", Title: "c", Status: task.StatusTodo, Priority: task.PriorityHigh},
		{SpaceID: "space-2", Title: "d", Status: task.StatusTodo, Priority: task.PriorityLow},
	}
	for _, s := range seed {
		_, err := repo.Upsert(ctx, s)
		require.NoError(t, err)
	}

	all, err := repo.ListBySpace(ctx, "space-1", task.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Title)
	assert.Equal(t, "c", all[2].Title)

	todo := task.StatusTodo
	high := task.PriorityHigh
	filtered, err := repo.ListBySpace(ctx, "space-1", task.TaskFilter{Status: &todo, Priority: &high})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "c", filtered[0].Title)

	mine, err := repo.ListBySpace(ctx, "space-1", task.TaskFilter{AssigneeID: &budi.ID})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "a", mine[0].Title)

	unassigned := ""
	nobody, err := repo.ListBySpace(ctx, "space-1", task.TaskFilter{AssigneeID: &unassigned})
	require.NoError(t, err)
	assert.Len(t, nobody, 2)

	empty, err := repo.ListBySpace(ctx, "space-9", task.TaskFilter{})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
