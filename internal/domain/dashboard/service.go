package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns combined dashboard data using goroutines
	GetDashboard(ctx context.Context, spaceID string) (*DashboardResponse, error)

	// GetStatusChart returns the status breakdown over all tasks
	GetStatusChart(ctx context.Context, spaceID string) (*PieChartResponse, error)

	// GetPriorityChart returns the priority breakdown over tasks not yet done
	GetPriorityChart(ctx context.Context, spaceID string) (*PieChartResponse, error)

	// GetTrend returns daily completions for the last seven days
	GetTrend(ctx context.Context, spaceID string) (*TrendResponse, error)
}
