package clock

import "time"

// Clock supplies the wall-clock instant used for "today" decisions.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// NewSystemClock returns a Clock reading time.Now in loc.
func NewSystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed always returns the same instant. Used by tests.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
