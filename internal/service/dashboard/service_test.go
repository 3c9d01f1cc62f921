package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newDashboardTestService() dashboard.DashboardService {
	tasks := memory.NewTaskRepository(
		task.Task{ID: 1, SpaceID: "space-1", Title: "Fix login", Status: task.StatusTodo, Priority: task.PriorityHigh, DueDate: "2024-01-08", AssigneeID: strPtr("emp-1")},
		task.Task{ID: 2, SpaceID: "space-1", Title: "Outage", Status: task.StatusInProgress, Priority: task.PriorityUrgent, DueDate: "2024-01-12", AssigneeID: strPtr("emp-1")},
		task.Task{ID: 3, SpaceID: "space-1", Title: "Docs", Status: task.StatusDone, Priority: task.PriorityLow, DueDate: "2024-01-05", AssigneeID: strPtr("emp-2"), CompletedAt: at("2024-01-09T12:00:00Z")},
		task.Task{ID: 4, SpaceID: "space-1", Title: "Release", Status: task.StatusDone, Priority: task.PriorityMedium, AssigneeID: strPtr("emp-2"), CompletedAt: at("2024-01-10T08:00:00Z")},
		task.Task{ID: 5, SpaceID: "space-1", Title: "Cleanup", Status: task.StatusTodo, Priority: task.PriorityLow, DueDate: "2024-01-20"},
		task.Task{ID: 6, SpaceID: "space-1", Title: "Handover", Status: task.StatusTodo, Priority: task.PriorityMedium, AssigneeID: strPtr("emp-x")},
		task.Task{ID: 7, SpaceID: "space-2", Title: "Elsewhere", Status: task.StatusDone, Priority: task.PriorityLow, CompletedAt: at("2024-01-10T08:00:00Z")},
	)
	employees := memory.NewEmployeeRepository(
		employee.Employee{ID: "emp-3", FullName: "Citra Lestari"},
		employee.Employee{ID: "emp-1", FullName: "Andi Wijaya"},
		employee.Employee{ID: "emp-2", FullName: "Budi Santoso"},
	)
	now := clock.Fixed(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC))
	return NewDashboardService(tasks, employees, now)
}

func TestDashboardService_GetDashboard(t *testing.T) {
	svc := newDashboardTestService()

	resp, err := svc.GetDashboard(context.Background(), "space-1")
	require.NoError(t, err)

	assert.Equal(t, dashboard.SummaryResponse{
		Total:          6,
		Todo:           3,
		InProgress:     1,
		Done:           2,
		Overdue:        1,
		CompletionRate: 33,
	}, resp.Summary)
	assert.Equal(t, "2024-01-10T09:00:00Z", resp.GeneratedAt)

	assert.True(t, resp.StatusChart.HasData)
	assert.Equal(t, 6, resp.StatusChart.Total)
	require.Len(t, resp.StatusChart.Segments, 3)
	assert.Equal(t, []int{50, 17, 33}, []int{
		resp.StatusChart.Segments[0].Percentage,
		resp.StatusChart.Segments[1].Percentage,
		resp.StatusChart.Segments[2].Percentage,
	})

	assert.Equal(t, 4, resp.PriorityChart.Total)
	assert.Equal(t, map[string]int{"LOW": 1, "MEDIUM": 1, "HIGH": 1, "URGENT": 1}, resp.PriorityChart.Counts)
	for _, seg := range resp.PriorityChart.Segments {
		assert.Equal(t, 25, seg.Percentage)
	}

	require.Len(t, resp.Trend.Days, TrendDays)
	assert.Equal(t, "2024-01-04", resp.Trend.Days[0].Date)
	assert.Equal(t, 1, resp.Trend.Days[5].Count)
	assert.Equal(t, 1, resp.Trend.Days[6].Count)
	assert.Equal(t, TrendScaleFloor, resp.Trend.Scale)
	require.Len(t, resp.Trend.Points, TrendDays)
	assert.InDelta(t, 80, resp.Trend.Points[6].Y, 1e-9)

	keys := make([]string, 0, len(resp.Workload))
	for _, w := range resp.Workload {
		keys = append(keys, w.AssigneeKey)
	}
	assert.Equal(t, []string{"emp-1", "emp-x", "emp-2", "emp-3", "unassigned"}, keys)
	assert.Equal(t, 2, resp.Workload[0].ActiveTasks)
	require.NotNil(t, resp.Workload[0].Employee)
	assert.Equal(t, "Andi Wijaya", resp.Workload[0].Employee.FullName)
	assert.Nil(t, resp.Workload[1].Employee)
	assert.Equal(t, 1, resp.Workload[4].ActiveTasks)
}

func TestDashboardService_EmptySpace(t *testing.T) {
	svc := newDashboardTestService()

	resp, err := svc.GetDashboard(context.Background(), "space-empty")
	require.NoError(t, err)

	assert.Zero(t, resp.Summary.Total)
	assert.Zero(t, resp.Summary.CompletionRate)
	assert.False(t, resp.StatusChart.HasData)
	assert.Empty(t, resp.StatusChart.Segments)
	assert.NotNil(t, resp.StatusChart.Segments)
	assert.False(t, resp.PriorityChart.HasData)
	for _, w := range resp.Workload {
		assert.Zero(t, w.ActiveTasks)
	}
}

func TestDashboardService_SubCharts(t *testing.T) {
	svc := newDashboardTestService()
	ctx := context.Background()

	status, err := svc.GetStatusChart(ctx, "space-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"TODO": 3, "IN_PROGRESS": 1, "DONE": 2}, status.Counts)

	priority, err := svc.GetPriorityChart(ctx, "space-2")
	require.NoError(t, err)
	assert.False(t, priority.HasData)
	assert.Equal(t, 0, priority.Total)

	trend, err := svc.GetTrend(ctx, "space-2")
	require.NoError(t, err)
	assert.Equal(t, 1, trend.Days[6].Count)
}

func TestDashboardService_RequiresSpace(t *testing.T) {
	svc := newDashboardTestService()
	ctx := context.Background()

	_, err := svc.GetDashboard(ctx, "")
	assert.ErrorIs(t, err, task.ErrSpaceIDRequired)
	_, err = svc.GetStatusChart(ctx, "")
	assert.ErrorIs(t, err, task.ErrSpaceIDRequired)
	_, err = svc.GetPriorityChart(ctx, "")
	assert.ErrorIs(t, err, task.ErrSpaceIDRequired)
	_, err = svc.GetTrend(ctx, "")
	assert.ErrorIs(t, err, task.ErrSpaceIDRequired)
}
