package employee

import "time"

// Employee is a team member tasks can be assigned to.
type Employee struct {
	ID        string
	UserID    *string
	FullName  string
	Email     *string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
