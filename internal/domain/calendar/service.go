package calendar

import "context"

// CalendarService builds the month view of a space
type CalendarService interface {
	// GetMonth returns the month grid with tasks bucketed by due date
	GetMonth(ctx context.Context, spaceID string, req MonthRequest) (*MonthGridResponse, error)
}
