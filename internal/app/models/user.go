package models

import (
	"time"
)

// RoleType defines the user role type
type RoleType string

const (
	RoleMentor RoleType = "mentor"
	RoleMentee RoleType = "mentee"
)

// Valid reports whether the value is a known role.
func (r RoleType) Valid() bool {
	return r == RoleMentor || r == RoleMentee
}

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                  // Unique identifier for the user
	Name      string    `json:"name" db:"name" example:"Jane Doe"`                       // Display name
	Email     string    `json:"email" db:"email" example:"jane@example.com"`             // User's email address
	Password  string    `json:"-" db:"password"`                                         // User's hashed password (excluded from JSON)
	Role      RoleType  `json:"role" db:"role" example:"mentor"`                         // User's role (mentor or mentee)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
}
