package timeline

import (
	"time"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/timeline"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/utils"
)

const (
	// WindowDays is the width of the Gantt window.
	WindowDays = 14

	// DefaultCreatedLookbackDays is how far before the due date a bar starts
	// when the task has no creation time. A display heuristic only.
	DefaultCreatedLookbackDays = 3
)

// BuildWindow returns WindowDays consecutive dates starting on the Sunday on
// or before reference, at midnight in reference's location.
func BuildWindow(reference time.Time) []time.Time {
	start := utils.AddDays(reference, -int(reference.Weekday()))

	window := make([]time.Time, WindowDays)
	for i := range window {
		window[i] = utils.AddDays(start, i)
	}
	return window
}

// MapTaskToColumns places the task's [created, due] range onto window,
// clamping the parts that fall outside. It returns nil when the task has no
// usable due date or when neither end of its range lands inside the window,
// including a range that starts before the window and ends after it.
//
// A creation date after the due date is treated as the due date, so the bar
// never has a negative span.
func MapTaskToColumns(t task.Task, window []time.Time) *timeline.Placement {
	if len(window) == 0 || t.DueDate == "" {
		return nil
	}

	loc := window[0].Location()
	due, err := utils.ParseDateIn(t.DueDate, loc)
	if err != nil {
		return nil
	}

	created := utils.AddDays(due, -DefaultCreatedLookbackDays)
	if t.CreatedAt != nil {
		created = utils.StartOfDay(t.CreatedAt.In(loc))
	}
	if created.After(due) {
		created = due
	}

	columns := make(map[string]int, len(window))
	for i, d := range window {
		columns[utils.DateKey(d)] = i
	}

	startIndex := columnOf(columns, utils.DateKey(created))
	endIndex := columnOf(columns, utils.DateKey(due))
	last := len(window) - 1

	if startIndex == -1 && endIndex == -1 {
		return nil
	}

	actualStart := 0
	if startIndex != -1 {
		actualStart = startIndex
	}
	actualEnd := last
	if endIndex != -1 {
		actualEnd = endIndex
	}

	return &timeline.Placement{
		StartColumn: actualStart,
		Span:        actualEnd - actualStart + 1,
	}
}

func columnOf(columns map[string]int, key string) int {
	if i, ok := columns[key]; ok {
		return i
	}
	return -1
}
