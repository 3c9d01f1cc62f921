package calendar

import (
	"time"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/utils"
)

// BuildMonthGrid returns every day needed to draw reference's month as whole
// weeks starting on weekStart. Cells are ordered and carry no tasks yet.
// now is only used to flag today's cell.
func BuildMonthGrid(reference time.Time, weekStart calendar.WeekStart, now time.Time) []calendar.Cell {
	firstOfMonth := utils.FirstOfMonth(reference)
	lastOfMonth := utils.LastOfMonth(reference)

	startWeekday := int(firstOfMonth.Weekday())
	endWeekday := int(lastOfMonth.Weekday())

	var leadDays, trailDays int
	if weekStart == calendar.WeekStartMonday {
		// Sunday wraps to the end of the previous week.
		if startWeekday >= 1 {
			leadDays = startWeekday - 1
		} else {
			leadDays = 6
		}
		trailDays = (7 - endWeekday) % 7
	} else {
		leadDays = startWeekday
		trailDays = 6 - endWeekday
	}

	startDate := utils.AddDays(firstOfMonth, -leadDays)
	endDate := utils.AddDays(lastOfMonth, trailDays)

	today := now.In(reference.Location())
	cells := make([]calendar.Cell, 0, 42)
	for d := startDate; !d.After(endDate); d = utils.AddDays(d, 1) {
		cells = append(cells, calendar.Cell{
			Date:           d,
			IsCurrentMonth: d.Month() == reference.Month(),
			IsToday:        utils.SameDay(d, today),
		})
	}
	return cells
}

// SplitWeeks chunks a grid into rows of seven cells.
func SplitWeeks(cells []calendar.Cell) [][]calendar.Cell {
	weeks := make([][]calendar.Cell, 0, len(cells)/7)
	for i := 0; i+7 <= len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}
