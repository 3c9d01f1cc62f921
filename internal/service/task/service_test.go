package task

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func newTaskTestService() task.TaskService {
	completed := time.Date(2024, 1, 8, 15, 0, 0, 0, time.UTC)
	tasks := memory.NewTaskRepository(
		task.Task{ID: 1, SpaceID: "space-1", Title: "Write report", Status: task.StatusTodo, Priority: task.PriorityHigh, DueDate: "2024-01-12", AssigneeID: strPtr("emp-1")},
		task.Task{ID: 2, SpaceID: "space-1", Title: "Ship release", Status: task.StatusDone, Priority: task.PriorityLow, CompletedAt: &completed},
		task.Task{ID: 3, SpaceID: "space-2", Title: "Other space", Status: task.StatusTodo, Priority: task.PriorityLow},
	)
	employees := memory.NewEmployeeRepository(
		employee.Employee{ID: "emp-1", FullName: "Andi Wijaya"},
		employee.Employee{ID: "emp-2", FullName: "Budi Santoso"},
	)
	return NewTaskService(tasks, employees, clock.Fixed(testNow))
}

func TestTaskService_ListTasks(t *testing.T) {
	svc := newTaskTestService()
	ctx := context.Background()

	all, err := svc.ListTasks(ctx, "space-1", task.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID)

	done := task.StatusDone
	filtered, err := svc.ListTasks(ctx, "space-1", task.TaskFilter{Status: &done})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, int64(2), filtered[0].ID)

	empty, err := svc.ListTasks(ctx, "space-empty", task.TaskFilter{})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = svc.ListTasks(ctx, "", task.TaskFilter{})
	assert.ErrorIs(t, err, task.ErrSpaceIDRequired)
}

func TestTaskService_GetTask(t *testing.T) {
	svc := newTaskTestService()
	ctx := context.Background()

	got, err := svc.GetTask(ctx, "space-1", 1)
	require.NoError(t, err)
	assert.Equal(t, "Write report", got.Title)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "2024-01-12", *got.DueDate)

	_, err = svc.GetTask(ctx, "space-1", 3)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)

	_, err = svc.GetTask(ctx, "space-1", 0)
	assert.ErrorIs(t, err, task.ErrInvalidTaskID)
}

func TestTaskService_CreateTask(t *testing.T) {
	svc := newTaskTestService()
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "space-1", task.CreateTaskRequest{
		Title:      "  Plan sprint ",
		Status:     "TODO",
		Priority:   "MEDIUM",
		DueDate:    strPtr("2024-01-15"),
		AssigneeID: strPtr("emp-2"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), created.ID)
	assert.Equal(t, "space-1", created.SpaceID)
	assert.Equal(t, "Plan sprint", created.Title)
	require.NotNil(t, created.AssigneeID)
	assert.Equal(t, "emp-2", *created.AssigneeID)
	assert.NotNil(t, created.CreatedAt)
	assert.Nil(t, created.CompletedAt)
}

func TestTaskService_CreateTask_DoneIsStamped(t *testing.T) {
	svc := newTaskTestService()

	created, err := svc.CreateTask(context.Background(), "space-1", task.CreateTaskRequest{
		Title:      "Already done",
		Status:     "DONE",
		Priority:   "LOW",
		AssigneeID: strPtr(""),
	})
	require.NoError(t, err)

	require.NotNil(t, created.CompletedAt)
	assert.Equal(t, "2024-01-10T09:00:00Z", *created.CompletedAt)
	assert.Nil(t, created.AssigneeID)
	assert.Nil(t, created.DueDate)
}

func TestTaskService_CreateTask_Invalid(t *testing.T) {
	svc := newTaskTestService()
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, "space-1", task.CreateTaskRequest{
		Title:    "",
		Status:   "BLOCKED",
		Priority: "LOW",
		DueDate:  strPtr("15-01-2024"),
	})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	fields := validationErrs.ToMap()
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "status")
	assert.Contains(t, fields, "due_date")
	assert.NotContains(t, fields, "priority")

	_, err = svc.CreateTask(ctx, "space-1", task.CreateTaskRequest{
		Title:      "Orphan",
		Status:     "TODO",
		Priority:   "LOW",
		AssigneeID: strPtr("emp-404"),
	})
	assert.ErrorIs(t, err, task.ErrAssigneeNotFound)
}

func TestTaskService_UpdateTask(t *testing.T) {
	svc := newTaskTestService()
	ctx := context.Background()

	updated, err := svc.UpdateTask(ctx, "space-1", task.UpdateTaskRequest{
		ID:       1,
		Title:    "Write final report",
		Status:   "IN_PROGRESS",
		Priority: "URGENT",
		DueDate:  strPtr("2024-01-11"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Write final report", updated.Title)
	assert.Equal(t, task.StatusInProgress, updated.Status)
	assert.Equal(t, task.PriorityUrgent, updated.Priority)
	assert.Nil(t, updated.AssigneeID)

	_, err = svc.UpdateTask(ctx, "space-2", task.UpdateTaskRequest{ID: 1, Title: "x", Status: "TODO", Priority: "LOW"})
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestTaskService_UpdateStatus(t *testing.T) {
	svc := newTaskTestService()
	ctx := context.Background()

	t.Run("entering done stamps completion", func(t *testing.T) {
		got, err := svc.UpdateStatus(ctx, "space-1", task.UpdateStatusRequest{ID: 1, Status: "DONE"})
		require.NoError(t, err)
		require.NotNil(t, got.CompletedAt)
		assert.Equal(t, "2024-01-10T09:00:00Z", *got.CompletedAt)
	})

	t.Run("staying done keeps the first completion", func(t *testing.T) {
		got, err := svc.UpdateStatus(ctx, "space-1", task.UpdateStatusRequest{ID: 2, Status: "DONE"})
		require.NoError(t, err)
		require.NotNil(t, got.CompletedAt)
		assert.Equal(t, "2024-01-08T15:00:00Z", *got.CompletedAt)
	})

	t.Run("leaving done clears completion", func(t *testing.T) {
		got, err := svc.UpdateStatus(ctx, "space-1", task.UpdateStatusRequest{ID: 2, Status: "TODO"})
		require.NoError(t, err)
		assert.Nil(t, got.CompletedAt)
		assert.Equal(t, task.StatusTodo, got.Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, "space-1", task.UpdateStatusRequest{ID: 1, Status: "done"})
		var validationErrs validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		assert.Contains(t, validationErrs.ToMap(), "status")
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	svc := newTaskTestService()
	ctx := context.Background()

	require.NoError(t, svc.DeleteTask(ctx, "space-1", 1))

	_, err := svc.GetTask(ctx, "space-1", 1)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)

	assert.ErrorIs(t, svc.DeleteTask(ctx, "space-1", 1), task.ErrTaskNotFound)
	assert.ErrorIs(t, svc.DeleteTask(ctx, "space-1", 3), task.ErrTaskNotFound)
}
