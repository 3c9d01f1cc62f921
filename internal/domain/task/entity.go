package task

import "time"

// Task is a unit of work inside a space. DueDate is an ISO calendar date
// (YYYY-MM-DD) kept as the literal string the store returned.
type Task struct {
	ID          int64
	SpaceID     string
	Title       string
	Description *string
	Status      Status
	Priority    Priority
	DueDate     string
	CreatedAt   *time.Time
	AssigneeID  *string
	CompletedAt *time.Time
	UpdatedAt   time.Time
}

// IsActive reports whether the task still counts as open work.
func (t Task) IsActive() bool {
	return t.Status != StatusDone
}

// Assignee returns the assignee id, or "" when unassigned.
func (t Task) Assignee() string {
	if t.AssigneeID == nil {
		return ""
	}
	return *t.AssigneeID
}

type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// Statuses is the fixed display order of status categories.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// Priorities is the fixed display order of priority categories.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}
