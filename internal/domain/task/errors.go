package task

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrSpaceIDRequired  = errors.New("space id is required")
	ErrInvalidTaskID    = errors.New("invalid task id")
	ErrAssigneeNotFound = errors.New("assignee does not exist")
)
