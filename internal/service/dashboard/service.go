package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/service/timeline"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	task.TaskRepository
	employee.EmployeeRepository
	clock clock.Clock
}

func NewDashboardService(taskRepo task.TaskRepository, employeeRepo employee.EmployeeRepository, clk clock.Clock) dashboard.DashboardService {
	return &DashboardServiceImpl{
		TaskRepository:     taskRepo,
		EmployeeRepository: employeeRepo,
		clock:              clk,
	}
}

func (s *DashboardServiceImpl) listTasks(ctx context.Context, spaceID string) ([]task.Task, error) {
	if spaceID == "" {
		return nil, task.ErrSpaceIDRequired
	}
	return s.ListBySpace(ctx, spaceID, task.TaskFilter{})
}

// GetDashboard returns combined dashboard data. Tasks and employees are
// fetched in parallel; everything else is computed from those two lists.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, spaceID string) (*dashboard.DashboardResponse, error) {
	if spaceID == "" {
		return nil, task.ErrSpaceIDRequired
	}

	var (
		tasks     []task.Task
		employees []employee.Employee
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Tasks of the space
	g.Go(func() error {
		var err error
		tasks, err = s.ListBySpace(gCtx, spaceID, task.TaskFilter{})
		return err
	})

	// 2. Employees, for workload names
	g.Go(func() error {
		var err error
		employees, err = s.EmployeeRepository.List(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	return &dashboard.DashboardResponse{
		Summary:       buildSummary(tasks, now),
		StatusChart:   statusChart(tasks),
		PriorityChart: priorityChart(tasks),
		Trend:         trend(tasks, now),
		Workload:      buildWorkload(tasks, employees),
		GeneratedAt:   now.Format(time.RFC3339),
	}, nil
}

// GetStatusChart implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetStatusChart(ctx context.Context, spaceID string) (*dashboard.PieChartResponse, error) {
	tasks, err := s.listTasks(ctx, spaceID)
	if err != nil {
		return nil, err
	}
	chart := statusChart(tasks)
	return &chart, nil
}

// GetPriorityChart implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetPriorityChart(ctx context.Context, spaceID string) (*dashboard.PieChartResponse, error) {
	tasks, err := s.listTasks(ctx, spaceID)
	if err != nil {
		return nil, err
	}
	chart := priorityChart(tasks)
	return &chart, nil
}

// GetTrend implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetTrend(ctx context.Context, spaceID string) (*dashboard.TrendResponse, error) {
	tasks, err := s.listTasks(ctx, spaceID)
	if err != nil {
		return nil, err
	}
	t := trend(tasks, s.clock.Now())
	return &t, nil
}

func buildSummary(tasks []task.Task, now time.Time) dashboard.SummaryResponse {
	counts := CountByStatus(tasks)
	summary := dashboard.SummaryResponse{
		Total:      len(tasks),
		Todo:       counts[task.StatusTodo],
		InProgress: counts[task.StatusInProgress],
		Done:       counts[task.StatusDone],
		Overdue:    CountOverdue(tasks, now),
	}
	if summary.Total > 0 {
		summary.CompletionRate = (200*summary.Done + summary.Total) / (2 * summary.Total)
	}
	return summary
}

func statusChart(tasks []task.Task) dashboard.PieChartResponse {
	return pieChart(StatusCategories(CountByStatus(tasks)))
}

func priorityChart(tasks []task.Task) dashboard.PieChartResponse {
	return pieChart(PriorityCategories(CountByPriority(tasks)))
}

func pieChart(categories []dashboard.CategoryCount) dashboard.PieChartResponse {
	chart := dashboard.PieChartResponse{
		Counts: make(map[string]int, len(categories)),
	}
	for _, c := range categories {
		chart.Counts[c.Label] = c.Count
		chart.Total += c.Count
	}
	chart.HasData = chart.Total > 0
	chart.Segments = dashboard.ToSegmentResponses(BuildPieSegments(categories))
	return chart
}

func trend(tasks []task.Task, now time.Time) dashboard.TrendResponse {
	daily := DailyCompletions(tasks, now, TrendDays)

	days := make([]dashboard.TrendDayResponse, 0, len(daily))
	counts := make([]int, 0, len(daily))
	for _, d := range daily {
		days = append(days, dashboard.TrendDayResponse{Date: d.Date, Count: d.Count})
		counts = append(counts, d.Count)
	}

	return dashboard.TrendResponse{
		Days:   days,
		Points: dashboard.ToPointResponses(BuildTrendPoints(counts)),
		Scale:  TrendScale(counts),
	}
}

// buildWorkload lists every employee with their active task count, followed
// by assignees missing from the employee list and the unassigned bucket when
// they hold active work. Busiest first.
func buildWorkload(tasks []task.Task, employees []employee.Employee) []dashboard.WorkloadResponse {
	active := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsActive() {
			active = append(active, t)
		}
	}

	counts := make(map[string]int)
	groups := timeline.GroupByAssignee(active)
	for _, g := range groups {
		counts[g.Key] = len(g.Tasks)
	}

	result := make([]dashboard.WorkloadResponse, 0, len(employees)+len(groups))
	known := make(map[string]bool, len(employees))
	for _, e := range employees {
		known[e.ID] = true
		er := employee.ToResponse(e)
		result = append(result, dashboard.WorkloadResponse{
			AssigneeKey: e.ID,
			Employee:    &er,
			ActiveTasks: counts[e.ID],
		})
	}
	for _, g := range groups {
		if known[g.Key] {
			continue
		}
		result = append(result, dashboard.WorkloadResponse{
			AssigneeKey: g.Key,
			ActiveTasks: len(g.Tasks),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		iUnassigned := result[i].AssigneeKey == timeline.UnassignedKey
		jUnassigned := result[j].AssigneeKey == timeline.UnassignedKey
		if iUnassigned != jUnassigned {
			return jUnassigned
		}
		return result[i].ActiveTasks > result[j].ActiveTasks
	})
	return result
}
