// internal/models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a session identity created at login and discarded at logout.
// It is never persisted; a process restart starts logged out.
type User struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Role       UserRole  `json:"role"`
	LoggedInAt time.Time `json:"logged_in_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
