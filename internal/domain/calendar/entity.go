package calendar

import (
	"time"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
)

type WeekStart string

const (
	WeekStartSunday WeekStart = "sunday"
	WeekStartMonday WeekStart = "monday"
)

func (w WeekStart) IsValid() bool {
	return w == WeekStartSunday || w == WeekStartMonday
}

// Weekday returns the time.Weekday a grid row starts on.
func (w WeekStart) Weekday() time.Weekday {
	if w == WeekStartMonday {
		return time.Monday
	}
	return time.Sunday
}

// Cell is one day of a month grid together with the tasks due that day.
type Cell struct {
	Date           time.Time
	IsCurrentMonth bool
	IsToday        bool
	Tasks          []task.Task
}
