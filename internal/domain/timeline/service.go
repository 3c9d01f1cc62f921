package timeline

import "context"

// TimelineService builds the two-week Gantt view of a space
type TimelineService interface {
	// GetTimeline returns the window anchored on req.Date with one row per assignee
	GetTimeline(ctx context.Context, spaceID string, req TimelineRequest) (*TimelineResponse, error)
}
