package dashboard

import "github.com/cmlabs-hris/taskboard-backend-go/internal/domain/employee"

// ========== COMBINED DASHBOARD ==========

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	Summary       SummaryResponse    `json:"summary"`
	StatusChart   PieChartResponse   `json:"status_chart"`
	PriorityChart PieChartResponse   `json:"priority_chart"`
	Trend         TrendResponse      `json:"trend"`
	Workload      []WorkloadResponse `json:"workload"`
	GeneratedAt   string             `json:"generated_at"`
}

// ========== SUMMARY ==========

// SummaryResponse contains task counts for the space
type SummaryResponse struct {
	Total          int `json:"total"`
	Todo           int `json:"todo"`
	InProgress     int `json:"in_progress"`
	Done           int `json:"done"`
	Overdue        int `json:"overdue"`         // active tasks due before today
	CompletionRate int `json:"completion_rate"` // percentage of DONE tasks
}

// ========== PIE CHARTS ==========

type SegmentResponse struct {
	Label        string  `json:"label"`
	Count        int     `json:"count"`
	Percentage   int     `json:"percentage"`
	StartAngle   float64 `json:"start_angle"`
	EndAngle     float64 `json:"end_angle"`
	Path         string  `json:"path"`
	LargeArcFlag int     `json:"large_arc_flag"`
	IsFullCircle bool    `json:"is_full_circle"`
}

// PieChartResponse is a status or priority breakdown. Segments is empty and
// HasData false when there is nothing to chart.
type PieChartResponse struct {
	Total    int               `json:"total"`
	HasData  bool              `json:"has_data"`
	Counts   map[string]int    `json:"counts"`
	Segments []SegmentResponse `json:"segments"`
}

// ========== COMPLETION TREND ==========

type TrendDayResponse struct {
	Date  string `json:"date"` // Format: "YYYY-MM-DD"
	Count int    `json:"count"`
}

type PointResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TrendResponse holds completions for the last days ending today
type TrendResponse struct {
	Days   []TrendDayResponse `json:"days"`
	Points []PointResponse    `json:"points"`
	Scale  int                `json:"scale"` // y axis maximum
}

// ========== WORKLOAD ==========

// WorkloadResponse is the number of active tasks held by one assignee
type WorkloadResponse struct {
	AssigneeKey string                     `json:"assignee_key"`
	Employee    *employee.EmployeeResponse `json:"employee,omitempty"`
	ActiveTasks int                        `json:"active_tasks"`
}

func ToSegmentResponses(segments []Segment) []SegmentResponse {
	out := make([]SegmentResponse, 0, len(segments))
	for _, s := range segments {
		out = append(out, SegmentResponse{
			Label:        s.Label,
			Count:        s.Count,
			Percentage:   s.Percentage,
			StartAngle:   s.StartAngle,
			EndAngle:     s.EndAngle,
			Path:         s.Path,
			LargeArcFlag: s.LargeArcFlag,
			IsFullCircle: s.IsFullCircle,
		})
	}
	return out
}

func ToPointResponses(points []Point) []PointResponse {
	out := make([]PointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, PointResponse{X: p.X, Y: p.Y})
	}
	return out
}
