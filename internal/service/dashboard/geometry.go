package dashboard

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/dashboard"
)

const (
	// ChartCenter is the x and y of the pie center in a 100x100 viewport.
	ChartCenter = 50.0
	// ChartRadius is the pie radius in viewport units.
	ChartRadius = 40.0

	// TrendScaleFloor is the smallest y axis maximum of the trend line, so a
	// nearly empty history does not fill the plot.
	TrendScaleFloor = 5
)

// BuildPieSegments turns ordered category counts into pie slices. Zero-count
// categories are skipped; angles follow the exact share of the total while
// Percentage carries the rounded value from Percentages. A category holding
// the whole total is drawn as a full circle.
func BuildPieSegments(counts []dashboard.CategoryCount) []dashboard.Segment {
	segments := make([]dashboard.Segment, 0, len(counts))

	percentages, hasData := Percentages(counts)
	if !hasData {
		return segments
	}

	total := 0
	for _, c := range counts {
		total += c.Count
	}

	cumulative := 0.0
	for i, c := range counts {
		if c.Count == 0 {
			continue
		}

		share := float64(c.Count) / float64(total) * 100
		startAngle := cumulative / 100 * 360
		cumulative += share
		endAngle := cumulative / 100 * 360

		seg := dashboard.Segment{
			Label:      c.Label,
			Count:      c.Count,
			Percentage: percentages[i],
			StartAngle: startAngle,
			EndAngle:   endAngle,
		}

		if c.Count == total {
			seg.IsFullCircle = true
			seg.LargeArcFlag = 1
			seg.Path = fullCirclePath()
		} else {
			if share > 50 {
				seg.LargeArcFlag = 1
			}
			seg.Path = slicePath(startAngle, endAngle, seg.LargeArcFlag)
		}

		segments = append(segments, seg)
	}

	return segments
}

// BuildTrendPoints spreads daily counts across a 0-100 plot box. x runs left
// to right by index; y is inverted so larger counts sit higher.
func BuildTrendPoints(counts []int) []dashboard.Point {
	points := make([]dashboard.Point, 0, len(counts))

	scale := TrendScale(counts)
	n := len(counts)
	for i, c := range counts {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1) * 100
		}
		points = append(points, dashboard.Point{
			X: x,
			Y: 100 - float64(c)/float64(scale)*100,
		})
	}

	return points
}

// TrendScale returns the y axis maximum for counts: their largest value, but
// never less than TrendScaleFloor.
func TrendScale(counts []int) int {
	scale := TrendScaleFloor
	for _, c := range counts {
		if c > scale {
			scale = c
		}
	}
	return scale
}

func pointOnCircle(angleDeg float64) (float64, float64) {
	rad := angleDeg * math.Pi / 180
	return ChartCenter + ChartRadius*math.Cos(rad), ChartCenter + ChartRadius*math.Sin(rad)
}

func slicePath(startAngle, endAngle float64, largeArc int) string {
	x1, y1 := pointOnCircle(startAngle)
	x2, y2 := pointOnCircle(endAngle)
	return fmt.Sprintf("M %s %s L %s %s A %s %s 0 %d 1 %s %s Z",
		coord(ChartCenter), coord(ChartCenter),
		coord(x1), coord(y1),
		coord(ChartRadius), coord(ChartRadius),
		largeArc,
		coord(x2), coord(y2),
	)
}

// fullCirclePath draws two half arcs, since a single arc whose start and end
// points coincide renders nothing.
func fullCirclePath() string {
	left, right := ChartCenter-ChartRadius, ChartCenter+ChartRadius
	r := coord(ChartRadius)
	return fmt.Sprintf("M %s %s A %s %s 0 1 1 %s %s A %s %s 0 1 1 %s %s Z",
		coord(left), coord(ChartCenter),
		r, r, coord(right), coord(ChartCenter),
		r, r, coord(left), coord(ChartCenter),
	)
}

// coord formats a viewport coordinate with at most three decimals.
func coord(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
