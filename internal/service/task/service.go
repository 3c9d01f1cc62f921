package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/clock"
)

type TaskServiceImpl struct {
	task.TaskRepository
	employee.EmployeeRepository
	clock clock.Clock
}

func NewTaskService(taskRepo task.TaskRepository, employeeRepo employee.EmployeeRepository, clk clock.Clock) task.TaskService {
	return &TaskServiceImpl{
		TaskRepository:     taskRepo,
		EmployeeRepository: employeeRepo,
		clock:              clk,
	}
}

// ListTasks implements task.TaskService.
func (s *TaskServiceImpl) ListTasks(ctx context.Context, spaceID string, filter task.TaskFilter) ([]task.TaskResponse, error) {
	if spaceID == "" {
		return nil, task.ErrSpaceIDRequired
	}

	tasks, err := s.ListBySpace(ctx, spaceID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return task.ToResponses(tasks), nil
}

// GetTask implements task.TaskService.
func (s *TaskServiceImpl) GetTask(ctx context.Context, spaceID string, id int64) (task.TaskResponse, error) {
	t, err := s.getTask(ctx, spaceID, id)
	if err != nil {
		return task.TaskResponse{}, err
	}
	return task.ToResponse(t), nil
}

// CreateTask implements task.TaskService.
func (s *TaskServiceImpl) CreateTask(ctx context.Context, spaceID string, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if spaceID == "" {
		return task.TaskResponse{}, task.ErrSpaceIDRequired
	}
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	assigneeID, err := s.resolveAssignee(ctx, req.AssigneeID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	newTask := task.Task{
		SpaceID:     spaceID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Status:      task.Status(req.Status),
		Priority:    task.Priority(req.Priority),
		DueDate:     derefOrEmpty(req.DueDate),
		AssigneeID:  assigneeID,
	}
	applyCompletion(&newTask, nil, s.clock.Now())

	created, err := s.Upsert(ctx, newTask)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}

	return task.ToResponse(created), nil
}

// UpdateTask implements task.TaskService.
func (s *TaskServiceImpl) UpdateTask(ctx context.Context, spaceID string, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	existing, err := s.getTask(ctx, spaceID, req.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	assigneeID, err := s.resolveAssignee(ctx, req.AssigneeID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	updated := existing
	updated.Title = strings.TrimSpace(req.Title)
	updated.Description = req.Description
	updated.Status = task.Status(req.Status)
	updated.Priority = task.Priority(req.Priority)
	updated.DueDate = derefOrEmpty(req.DueDate)
	updated.AssigneeID = assigneeID
	applyCompletion(&updated, &existing, s.clock.Now())

	saved, err := s.Upsert(ctx, updated)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to update task: %w", err)
	}

	return task.ToResponse(saved), nil
}

// UpdateStatus implements task.TaskService.
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, spaceID string, req task.UpdateStatusRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	existing, err := s.getTask(ctx, spaceID, req.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	updated := existing
	updated.Status = task.Status(req.Status)
	applyCompletion(&updated, &existing, s.clock.Now())

	saved, err := s.Upsert(ctx, updated)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to update task status: %w", err)
	}

	return task.ToResponse(saved), nil
}

// DeleteTask implements task.TaskService.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, spaceID string, id int64) error {
	if _, err := s.getTask(ctx, spaceID, id); err != nil {
		return err
	}
	if err := s.Delete(ctx, spaceID, id); err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func (s *TaskServiceImpl) getTask(ctx context.Context, spaceID string, id int64) (task.Task, error) {
	if spaceID == "" {
		return task.Task{}, task.ErrSpaceIDRequired
	}
	if id <= 0 {
		return task.Task{}, task.ErrInvalidTaskID
	}

	t, err := s.TaskRepository.GetByID(ctx, spaceID, id)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return task.Task{}, err
		}
		return task.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// resolveAssignee normalizes an empty id to unassigned and checks that any
// other id belongs to an existing employee.
func (s *TaskServiceImpl) resolveAssignee(ctx context.Context, assigneeID *string) (*string, error) {
	if assigneeID == nil || strings.TrimSpace(*assigneeID) == "" {
		return nil, nil
	}

	id := strings.TrimSpace(*assigneeID)
	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, task.ErrAssigneeNotFound
		}
		return nil, fmt.Errorf("failed to get assignee: %w", err)
	}
	return &id, nil
}

// applyCompletion stamps CompletedAt when t enters DONE and clears it when t
// leaves DONE. A task that stays DONE keeps its original completion time.
func applyCompletion(t *task.Task, previous *task.Task, now time.Time) {
	if t.Status != task.StatusDone {
		t.CompletedAt = nil
		return
	}
	if previous != nil && previous.Status == task.StatusDone && previous.CompletedAt != nil {
		t.CompletedAt = previous.CompletedAt
		return
	}
	t.CompletedAt = &now
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
