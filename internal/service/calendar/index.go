package calendar

import "github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"

// IndexByDueDate buckets tasks by their literal DueDate string. Tasks without a
// due date are left out; relative order inside a bucket follows the input.
func IndexByDueDate(tasks []task.Task) map[string][]task.Task {
	index := make(map[string][]task.Task)
	for _, t := range tasks {
		if t.DueDate == "" {
			continue
		}
		index[t.DueDate] = append(index[t.DueDate], t)
	}
	return index
}
