package timeline

import (
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/timeline"
)

// UnassignedKey groups tasks that have no assignee.
const UnassignedKey = "unassigned"

// GroupByAssignee partitions tasks by assignee id. Groups come out in order of
// each key's first appearance and keep the input order of their tasks.
func GroupByAssignee(tasks []task.Task) []timeline.AssigneeGroup {
	positions := make(map[string]int)
	groups := make([]timeline.AssigneeGroup, 0)

	for _, t := range tasks {
		key := t.Assignee()
		if key == "" {
			key = UnassignedKey
		}

		i, ok := positions[key]
		if !ok {
			i = len(groups)
			positions[key] = i
			groups = append(groups, timeline.AssigneeGroup{Key: key})
		}
		groups[i].Tasks = append(groups[i].Tasks, t)
	}
	return groups
}
