package dashboard

// CategoryCount is one category of a chart with its task count.
type CategoryCount struct {
	Label string
	Count int
}

// Segment is a category's slice of a pie chart drawn in a 100x100 viewport.
// Angles are in degrees, clockwise from the positive x axis.
type Segment struct {
	Label        string
	Count        int
	Percentage   int
	StartAngle   float64
	EndAngle     float64
	Path         string
	LargeArcFlag int
	IsFullCircle bool
}

// Point is a trend line vertex in a 0-100 plot box.
type Point struct {
	X float64
	Y float64
}

// DailyCount is the number of tasks completed on one local date.
type DailyCount struct {
	Date  string
	Count int
}
