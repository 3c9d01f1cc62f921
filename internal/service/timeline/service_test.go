package timeline

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/timeline"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTimelineTestService() timeline.TimelineService {
	tasks := memory.NewTaskRepository(
		task.Task{ID: 1, SpaceID: "space-1", Title: "Draft", Status: task.StatusTodo, Priority: task.PriorityHigh, DueDate: "2024-01-09", CreatedAt: ts("2024-01-05T08:00:00Z"), AssigneeID: strPtr("emp-2")},
		task.Task{ID: 2, SpaceID: "space-1", Title: "Review", Status: task.StatusInProgress, Priority: task.PriorityLow, DueDate: "2024-01-12"},
		task.Task{ID: 3, SpaceID: "space-1", Title: "Old", Status: task.StatusDone, Priority: task.PriorityLow, DueDate: "2023-12-01", AssigneeID: strPtr("emp-3")},
		task.Task{ID: 4, SpaceID: "space-1", Title: "Deploy", Status: task.StatusTodo, Priority: task.PriorityUrgent, DueDate: "2024-01-15", AssigneeID: strPtr("emp-1")},
		task.Task{ID: 5, SpaceID: "space-1", Title: "Ghost", Status: task.StatusTodo, Priority: task.PriorityMedium, DueDate: "2024-01-11", AssigneeID: strPtr("emp-gone")},
		task.Task{ID: 6, SpaceID: "space-1", Title: "Someday", Status: task.StatusTodo, Priority: task.PriorityLow},
		task.Task{ID: 7, SpaceID: "space-2", Title: "Elsewhere", Status: task.StatusTodo, Priority: task.PriorityLow, DueDate: "2024-01-10"},
	)
	employees := memory.NewEmployeeRepository(
		employee.Employee{ID: "emp-1", FullName: "Zara Putri", Email: strPtr("zara@example.com")},
		employee.Employee{ID: "emp-2", FullName: "Andi Wijaya", Email: strPtr("andi@example.com")},
		employee.Employee{ID: "emp-3", FullName: "Budi Santoso", Email: strPtr("budi@example.com")},
	)
	now := clock.Fixed(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC))
	return NewTimelineService(tasks, employees, now)
}

func TestTimelineService_GetTimeline(t *testing.T) {
	svc := newTimelineTestService()

	resp, err := svc.GetTimeline(context.Background(), "space-1", timeline.TimelineRequest{})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-07", resp.StartDate)
	assert.Equal(t, "2024-01-20", resp.EndDate)
	require.Len(t, resp.Days, WindowDays)
	assert.Equal(t, "Sunday", resp.Days[0].Weekday)
	assert.True(t, resp.Days[3].IsToday)
	assert.False(t, resp.Days[2].IsToday)

	// emp-3 only has a task outside the window, so no lane.
	require.Len(t, resp.Rows, 4)
	assert.Equal(t, "emp-2", resp.Rows[0].AssigneeKey)
	assert.Equal(t, "emp-1", resp.Rows[1].AssigneeKey)
	assert.Equal(t, "emp-gone", resp.Rows[2].AssigneeKey)
	assert.Equal(t, UnassignedKey, resp.Rows[3].AssigneeKey)

	require.NotNil(t, resp.Rows[0].Employee)
	assert.Equal(t, "Andi Wijaya", resp.Rows[0].Employee.FullName)
	assert.Nil(t, resp.Rows[2].Employee)
	assert.Nil(t, resp.Rows[3].Employee)

	draft := resp.Rows[0].Bars[0]
	assert.Equal(t, int64(1), draft.Task.ID)
	assert.Equal(t, 0, draft.StartColumn)
	assert.Equal(t, 3, draft.Span)

	require.Len(t, resp.Rows[3].Bars, 1)
	review := resp.Rows[3].Bars[0]
	assert.Equal(t, int64(2), review.Task.ID)
	assert.Equal(t, 2, review.StartColumn)
	assert.Equal(t, 4, review.Span)
}

func TestTimelineService_GetTimeline_ExplicitDate(t *testing.T) {
	svc := newTimelineTestService()

	resp, err := svc.GetTimeline(context.Background(), "space-1", timeline.TimelineRequest{Date: "2023-11-29"})
	require.NoError(t, err)

	assert.Equal(t, "2023-11-26", resp.StartDate)
	assert.Equal(t, "2023-12-09", resp.EndDate)
	for _, d := range resp.Days {
		assert.False(t, d.IsToday)
	}
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "emp-3", resp.Rows[0].AssigneeKey)
	assert.Equal(t, 2, resp.Rows[0].Bars[0].StartColumn)
	assert.Equal(t, 4, resp.Rows[0].Bars[0].Span)
}

func TestTimelineService_GetTimeline_EmptySpace(t *testing.T) {
	svc := newTimelineTestService()

	resp, err := svc.GetTimeline(context.Background(), "space-empty", timeline.TimelineRequest{})
	require.NoError(t, err)
	assert.NotNil(t, resp.Rows)
	assert.Empty(t, resp.Rows)
	assert.Len(t, resp.Days, WindowDays)
}

func TestTimelineService_GetTimeline_InvalidInput(t *testing.T) {
	svc := newTimelineTestService()
	ctx := context.Background()

	_, err := svc.GetTimeline(ctx, "space-1", timeline.TimelineRequest{Date: "10/01/2024"})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "date")

	_, err = svc.GetTimeline(ctx, "", timeline.TimelineRequest{})
	assert.ErrorIs(t, err, task.ErrSpaceIDRequired)
}
