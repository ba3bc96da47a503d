package domain

import "time"

// Role is the closed set of user roles. Authorization decisions compare
// typed constants, never raw request strings.
type Role string

const (
	RoleNormal Role = "NORMAL"
	RoleAdmin  Role = "ADMIN"
	RoleOwner  Role = "OWNER"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleNormal, RoleAdmin, RoleOwner:
		return true
	}
	return false
}

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Address      string    `json:"address"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the authenticated principal extracted from a verified token.
type Identity struct {
	UserID int64
	Role   Role
	Name   string
}
