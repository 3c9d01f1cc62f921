package calendar

import "errors"

var (
	ErrInvalidMonth     = errors.New("month must be in YYYY-MM format")
	ErrInvalidWeekStart = errors.New("week_start must be sunday or monday")
)
