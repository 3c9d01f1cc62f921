package timeline

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/timeline"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type TimelineServiceImpl struct {
	task.TaskRepository
	employee.EmployeeRepository
	clock clock.Clock
}

func NewTimelineService(taskRepo task.TaskRepository, employeeRepo employee.EmployeeRepository, clk clock.Clock) timeline.TimelineService {
	return &TimelineServiceImpl{
		TaskRepository:     taskRepo,
		EmployeeRepository: employeeRepo,
		clock:              clk,
	}
}

// GetTimeline implements timeline.TimelineService.
func (s *TimelineServiceImpl) GetTimeline(ctx context.Context, spaceID string, req timeline.TimelineRequest) (*timeline.TimelineResponse, error) {
	if spaceID == "" {
		return nil, task.ErrSpaceIDRequired
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	reference := now
	if req.Date != "" {
		parsed, err := utils.ParseDateIn(req.Date, now.Location())
		if err != nil {
			return nil, err
		}
		reference = parsed
	}

	var (
		tasks     []task.Task
		employees []employee.Employee
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		tasks, err = s.ListBySpace(gCtx, spaceID, task.TaskFilter{})
		return err
	})

	g.Go(func() error {
		var err error
		employees, err = s.EmployeeRepository.List(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	window := BuildWindow(reference)
	resp := &timeline.TimelineResponse{
		StartDate: utils.DateKey(window[0]),
		EndDate:   utils.DateKey(window[len(window)-1]),
		Days:      make([]timeline.DayResponse, 0, len(window)),
		Rows:      make([]timeline.RowResponse, 0),
	}
	for _, d := range window {
		resp.Days = append(resp.Days, timeline.DayResponse{
			Date:    utils.DateKey(d),
			Weekday: d.Weekday().String(),
			IsToday: utils.SameDay(d, now),
		})
	}

	byID := make(map[string]employee.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	for _, group := range GroupByAssignee(tasks) {
		row := timeline.RowResponse{
			AssigneeKey: group.Key,
			Bars:        make([]timeline.BarResponse, 0, len(group.Tasks)),
		}
		if e, ok := byID[group.Key]; ok {
			er := employee.ToResponse(e)
			row.Employee = &er
		}
		for _, t := range group.Tasks {
			placement := MapTaskToColumns(t, window)
			if placement == nil {
				continue
			}
			row.Bars = append(row.Bars, timeline.BarResponse{
				Task:        task.ToResponse(t),
				StartColumn: placement.StartColumn,
				Span:        placement.Span,
			})
		}
		if len(row.Bars) > 0 {
			resp.Rows = append(resp.Rows, row)
		}
	}

	sortRows(resp.Rows)
	return resp, nil
}

// sortRows orders lanes by employee name; lanes without an employee record
// follow by key, and the unassigned lane is always last.
func sortRows(rows []timeline.RowResponse) {
	rank := func(r timeline.RowResponse) int {
		switch {
		case r.AssigneeKey == UnassignedKey:
			return 2
		case r.Employee == nil:
			return 1
		default:
			return 0
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		ri, rj := rank(rows[i]), rank(rows[j])
		if ri != rj {
			return ri < rj
		}
		if ri == 0 && rows[i].Employee.FullName != rows[j].Employee.FullName {
			return rows[i].Employee.FullName < rows[j].Employee.FullName
		}
		return rows[i].AssigneeKey < rows[j].AssigneeKey
	})
}
