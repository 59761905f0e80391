package models

import (
	"time"

	"github.com/yigit/mentorhub/internal/domain"
)

// Profile defines the profile model based on the 'profiles' table.
// Availability is stored as a JSONB column holding the canonical object
// shape; it is nil when the user never set a window.
type Profile struct {
	ID           int64                `json:"id" db:"id"`
	UserID       int64                `json:"userId" db:"user_id"`
	FirstName    string               `json:"firstName" db:"first_name"`
	LastName     string               `json:"lastName" db:"last_name"`
	Department   string               `json:"department" db:"department"`
	Bio          *string              `json:"bio,omitempty" db:"bio"`
	Experience   *string              `json:"experience,omitempty" db:"experience"`
	HourlyRate   *float64             `json:"hourlyRate,omitempty" db:"hourly_rate"`
	Availability *domain.Availability `json:"availability" db:"availability"`
	CreatedAt    time.Time            `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time            `json:"updatedAt" db:"updated_at"`
	User         *User                `json:"user,omitempty"` // Relation, no db tag
}

// Skill defines the skill model based on the 'skills' table
type Skill struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// UserSkill is a skill attached to a user with a proficiency level, from the
// 'user_skills' join table.
type UserSkill struct {
	Name             string `json:"name" db:"name"`
	ProficiencyLevel string `json:"proficiencyLevel" db:"proficiency_level"`
}
