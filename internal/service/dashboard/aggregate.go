package dashboard

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/utils"
)

// TrendDays is the length of the completion trend ending today.
const TrendDays = 7

// CountByStatus counts tasks per status. Every status in task.Statuses has an
// entry, zero included.
func CountByStatus(tasks []task.Task) map[task.Status]int {
	counts := make(map[task.Status]int, len(task.Statuses))
	for _, s := range task.Statuses {
		counts[s] = 0
	}
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts
}

// CountByPriority counts active tasks per priority. DONE tasks are skipped.
func CountByPriority(tasks []task.Task) map[task.Priority]int {
	counts := make(map[task.Priority]int, len(task.Priorities))
	for _, p := range task.Priorities {
		counts[p] = 0
	}
	for _, t := range tasks {
		if !t.IsActive() {
			continue
		}
		counts[t.Priority]++
	}
	return counts
}

// StatusCategories orders status counts for charting.
func StatusCategories(counts map[task.Status]int) []dashboard.CategoryCount {
	out := make([]dashboard.CategoryCount, 0, len(task.Statuses))
	for _, s := range task.Statuses {
		out = append(out, dashboard.CategoryCount{Label: string(s), Count: counts[s]})
	}
	return out
}

// PriorityCategories orders priority counts for charting.
func PriorityCategories(counts map[task.Priority]int) []dashboard.CategoryCount {
	out := make([]dashboard.CategoryCount, 0, len(task.Priorities))
	for _, p := range task.Priorities {
		out = append(out, dashboard.CategoryCount{Label: string(p), Count: counts[p]})
	}
	return out
}

// Percentages rounds each category's share of the total half-up. When the
// rounded values miss 100, the difference is settled one point at a time on
// the categories with the largest rounding error, so non-empty results always
// sum to exactly 100. hasData is false, and every value 0, when the total is 0.
func Percentages(counts []dashboard.CategoryCount) (percentages []int, hasData bool) {
	percentages = make([]int, len(counts))

	total := 0
	for _, c := range counts {
		total += c.Count
	}
	if total == 0 {
		return percentages, false
	}

	// remainders[i] is (exact - rounded) scaled by total.
	remainders := make([]int, len(counts))
	sum := 0
	for i, c := range counts {
		scaled := c.Count * 100
		percentages[i] = (2*scaled + total) / (2 * total)
		remainders[i] = scaled - percentages[i]*total
		sum += percentages[i]
	}

	order := make([]int, 0, len(counts))
	for i, c := range counts {
		if c.Count > 0 {
			order = append(order, i)
		}
	}

	diff := 100 - sum
	if diff > 0 {
		sort.SliceStable(order, func(a, b int) bool { return remainders[order[a]] > remainders[order[b]] })
		for k := 0; k < diff; k++ {
			percentages[order[k%len(order)]]++
		}
	} else if diff < 0 {
		sort.SliceStable(order, func(a, b int) bool { return remainders[order[a]] < remainders[order[b]] })
		for k := 0; k < -diff; k++ {
			percentages[order[k%len(order)]]--
		}
	}

	return percentages, true
}

// DailyCompletions counts DONE tasks by the local date of their completion
// time over the days days ending on now's date, oldest first.
func DailyCompletions(tasks []task.Task, now time.Time, days int) []dashboard.DailyCount {
	if days <= 0 {
		return []dashboard.DailyCount{}
	}

	today := utils.StartOfDay(now)
	result := make([]dashboard.DailyCount, days)
	positions := make(map[string]int, days)
	for i := 0; i < days; i++ {
		key := utils.DateKey(utils.AddDays(today, i-days+1))
		result[i] = dashboard.DailyCount{Date: key}
		positions[key] = i
	}

	for _, t := range tasks {
		if t.Status != task.StatusDone || t.CompletedAt == nil {
			continue
		}
		key := utils.DateKey(t.CompletedAt.In(now.Location()))
		if i, ok := positions[key]; ok {
			result[i].Count++
		}
	}
	return result
}

// CountOverdue counts active tasks due strictly before now's date. Tasks
// without a parseable due date are never overdue.
func CountOverdue(tasks []task.Task, now time.Time) int {
	today := utils.DateKey(now)
	overdue := 0
	for _, t := range tasks {
		if !t.IsActive() || t.DueDate == "" {
			continue
		}
		if _, err := utils.ParseDateIn(t.DueDate, now.Location()); err != nil {
			continue
		}
		if t.DueDate < today {
			overdue++
		}
	}
	return overdue
}
