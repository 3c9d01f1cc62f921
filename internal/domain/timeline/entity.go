package timeline

import "github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"

// Placement is a task bar's position inside the window, in whole days.
type Placement struct {
	StartColumn int
	Span        int
}

// AssigneeGroup holds the tasks of one assignee key in input order.
type AssigneeGroup struct {
	Key   string
	Tasks []task.Task
}
