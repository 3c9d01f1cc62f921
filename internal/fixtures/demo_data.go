package fixtures

import (
	"time"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/utils"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

// ==========================================
// DEMO DATA
// ==========================================

// DemoSpaceID is the space every demo task belongs to.
const DemoSpaceID = "demo"

// DemoMember is a team member seeded with the demo data. Members with a
// blank Email get an employee record but no login.
type DemoMember struct {
	Key      string // stable handle used by GetDemoTasks
	FullName string
	Email    string
}

// GetDemoMembers returns the demo team.
func GetDemoMembers() []DemoMember {
	return []DemoMember{
		{Key: "andi", FullName: "Andi Wijaya", Email: "andi@taskboard.local"},
		{Key: "budi", FullName: "Budi Santoso", Email: "budi@taskboard.local"},
		{Key: "citra", FullName: "Citra Lestari", Email: "citra@taskboard.local"},
		{Key: "dewi", FullName: "Dewi Anggraini"},
	}
}

// demoTask describes a task relative to the seeding day. Offsets are in days;
// a nil dueOffset means no due date.
type demoTask struct {
	title          string
	status         task.Status
	priority       task.Priority
	assignee       string
	createdOffset  int
	dueOffset      *int
	completedAfter int // days after creation, DONE tasks only
}

func offset(days int) *int { return &days }

var demoTasks = []demoTask{
	{title: "Draft sprint goals", status: task.StatusDone, priority: task.PriorityMedium, assignee: "andi", createdOffset: -9, dueOffset: offset(-6), completedAfter: 3},
	{title: "Fix login redirect loop", status: task.StatusDone, priority: task.PriorityUrgent, assignee: "budi", createdOffset: -6, dueOffset: offset(-4), completedAfter: 2},
	{title: "Review onboarding copy", status: task.StatusDone, priority: task.PriorityLow, assignee: "citra", createdOffset: -5, dueOffset: offset(-1), completedAfter: 4},
	{title: "Migrate CI runners", status: task.StatusInProgress, priority: task.PriorityHigh, assignee: "budi", createdOffset: -4, dueOffset: offset(-2)},
	{title: "Prepare release notes", status: task.StatusInProgress, priority: task.PriorityMedium, assignee: "andi", createdOffset: -2, dueOffset: offset(2)},
	{title: "Customer interview synthesis", status: task.StatusTodo, priority: task.PriorityMedium, assignee: "citra", createdOffset: -1, dueOffset: offset(5)},
	{title: "Rotate API keys", status: task.StatusTodo, priority: task.PriorityUrgent, assignee: "dewi", createdOffset: -3, dueOffset: offset(0)},
	{title: "Dashboard empty states", status: task.StatusTodo, priority: task.PriorityLow, assignee: "andi", createdOffset: 0, dueOffset: offset(9)},
	{title: "Quarterly planning deck", status: task.StatusTodo, priority: task.PriorityHigh, assignee: "", createdOffset: -1, dueOffset: offset(12)},
	{title: "Archive old boards", status: task.StatusTodo, priority: task.PriorityLow, assignee: "", createdOffset: -8},
	{title: "Accessibility audit", status: task.StatusDone, priority: task.PriorityHigh, assignee: "dewi", createdOffset: -7, dueOffset: offset(-3), completedAfter: 6},
	{title: "Retro follow-ups", status: task.StatusTodo, priority: task.PriorityMedium, assignee: "budi", createdOffset: -12, dueOffset: offset(-5)},
}

// GetDemoTasks returns the demo tasks of spaceID with dates relative to now.
// employeeIDs maps DemoMember.Key to the stored employee id; tasks whose
// assignee is missing from the map are left unassigned.
func GetDemoTasks(spaceID string, now time.Time, employeeIDs map[string]string) []task.Task {
	today := utils.StartOfDay(now)

	tasks := make([]task.Task, 0, len(demoTasks))
	for _, d := range demoTasks {
		created := utils.AddDays(today, d.createdOffset).Add(9 * time.Hour)

		t := task.Task{
			SpaceID:   spaceID,
			Title:     d.title,
			Status:    d.status,
			Priority:  d.priority,
			CreatedAt: timePtr(created),
		}
		if d.dueOffset != nil {
			t.DueDate = utils.DateKey(utils.AddDays(today, *d.dueOffset))
		}
		if id, ok := employeeIDs[d.assignee]; ok {
			t.AssigneeID = strPtr(id)
		}
		if d.status == task.StatusDone {
			t.CompletedAt = timePtr(created.AddDate(0, 0, d.completedAfter).Add(7 * time.Hour))
		}
		tasks = append(tasks, t)
	}
	return tasks
}
