package calendar

import (
	"context"
	"time"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/utils"
)

type CalendarServiceImpl struct {
	task.TaskRepository
	clock            clock.Clock
	defaultWeekStart calendar.WeekStart
}

func NewCalendarService(taskRepo task.TaskRepository, clk clock.Clock, defaultWeekStart calendar.WeekStart) calendar.CalendarService {
	if !defaultWeekStart.IsValid() {
		defaultWeekStart = calendar.WeekStartSunday
	}
	return &CalendarServiceImpl{
		TaskRepository:   taskRepo,
		clock:            clk,
		defaultWeekStart: defaultWeekStart,
	}
}

// parseMonth parses YYYY-MM in the clock's location, defaults to the current month
func parseMonth(month string, now time.Time) (time.Time, error) {
	if month == "" {
		return utils.FirstOfMonth(now), nil
	}
	parsed, err := time.ParseInLocation("2006-01", month, now.Location())
	if err != nil {
		return time.Time{}, calendar.ErrInvalidMonth
	}
	return parsed, nil
}

// GetMonth implements calendar.CalendarService.
func (s *CalendarServiceImpl) GetMonth(ctx context.Context, spaceID string, req calendar.MonthRequest) (*calendar.MonthGridResponse, error) {
	if spaceID == "" {
		return nil, task.ErrSpaceIDRequired
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	reference, err := parseMonth(req.Month, now)
	if err != nil {
		return nil, err
	}

	weekStart := s.defaultWeekStart
	if req.WeekStart != "" {
		weekStart = calendar.WeekStart(req.WeekStart)
	}

	tasks, err := s.ListBySpace(ctx, spaceID, task.TaskFilter{})
	if err != nil {
		return nil, err
	}

	visible := tasks
	if req.HideCompleted {
		visible = make([]task.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.IsActive() {
				visible = append(visible, t)
			}
		}
	}

	unscheduled := 0
	for _, t := range visible {
		if t.DueDate == "" {
			unscheduled++
		}
	}

	index := IndexByDueDate(visible)
	cells := BuildMonthGrid(reference, weekStart, now)
	for i := range cells {
		cells[i].Tasks = index[utils.DateKey(cells[i].Date)]
	}

	weeks := SplitWeeks(cells)
	resp := &calendar.MonthGridResponse{
		Month:       reference.Format("2006-01"),
		WeekStart:   weekStart,
		Weeks:       make([][]calendar.CellResponse, 0, len(weeks)),
		Unscheduled: unscheduled,
	}
	for _, week := range weeks {
		row := make([]calendar.CellResponse, 0, 7)
		for _, c := range week {
			row = append(row, calendar.CellResponse{
				Date:           utils.DateKey(c.Date),
				IsCurrentMonth: c.IsCurrentMonth,
				IsToday:        c.IsToday,
				Tasks:          task.ToResponses(c.Tasks),
			})
		}
		resp.Weeks = append(resp.Weeks, row)
	}

	return resp, nil
}
