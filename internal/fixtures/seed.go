package fixtures

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/database"
)

// ErrAlreadySeeded is returned when the demo users already exist.
var ErrAlreadySeeded = errors.New("demo data already seeded")

// SeededDataIDs holds IDs of the seeded demo data
type SeededDataIDs struct {
	UserIDs     map[string]string // email -> user id
	EmployeeIDs map[string]string // DemoMember.Key -> employee id
	TaskIDs     []int64
}

// NewSeededDataIDs creates a new SeededDataIDs with initialized maps
func NewSeededDataIDs() *SeededDataIDs {
	return &SeededDataIDs{
		UserIDs:     make(map[string]string),
		EmployeeIDs: make(map[string]string),
	}
}

type Seeder struct {
	tx        database.Transactor
	users     user.UserRepository
	employees employee.EmployeeRepository
	tasks     task.TaskRepository
}

func NewSeeder(tx database.Transactor, users user.UserRepository, employees employee.EmployeeRepository, tasks task.TaskRepository) *Seeder {
	return &Seeder{tx: tx, users: users, employees: employees, tasks: tasks}
}

// Seed stores the demo team and tasks in one transaction. Every demo login
// shares passwordHash. Dates are laid out around now so the calendar,
// timeline and dashboard have something to show.
func (s *Seeder) Seed(ctx context.Context, passwordHash string, now time.Time) (*SeededDataIDs, error) {
	members := GetDemoMembers()
	if _, err := s.users.GetByEmail(ctx, members[0].Email); err == nil {
		return nil, ErrAlreadySeeded
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check demo user: %w", err)
	}

	seeded := NewSeededDataIDs()
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		for _, m := range members {
			newEmployee := employee.Employee{FullName: m.FullName}

			if m.Email != "" {
				u, err := s.users.Create(txCtx, user.User{
					Email:         m.Email,
					PasswordHash:  strPtr(passwordHash),
					EmailVerified: true,
				})
				if err != nil {
					return fmt.Errorf("failed to create demo user %s: %w", m.Email, err)
				}
				seeded.UserIDs[m.Email] = u.ID
				newEmployee.UserID = strPtr(u.ID)
				newEmployee.Email = strPtr(m.Email)
			}

			e, err := s.employees.Create(txCtx, newEmployee)
			if err != nil {
				return fmt.Errorf("failed to create demo employee %s: %w", m.FullName, err)
			}
			seeded.EmployeeIDs[m.Key] = e.ID
		}

		for _, t := range GetDemoTasks(DemoSpaceID, now, seeded.EmployeeIDs) {
			saved, err := s.tasks.Upsert(txCtx, t)
			if err != nil {
				return fmt.Errorf("failed to create demo task %q: %w", t.Title, err)
			}
			seeded.TaskIDs = append(seeded.TaskIDs, saved.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Demo data seeded",
		"space_id", DemoSpaceID,
		"users", len(seeded.UserIDs),
		"employees", len(seeded.EmployeeIDs),
		"tasks", len(seeded.TaskIDs),
	)
	return seeded, nil
}
