package dto

import (
	"time"

	"github.com/yigit/mentorhub/internal/domain"
)

// SkillInput is a skill name with an optional proficiency level
type SkillInput struct {
	Name             string `json:"name" binding:"required,min=1,max=100"`
	ProficiencyLevel string `json:"proficiencyLevel" binding:"omitempty,oneof=beginner intermediate advanced expert"`
}

// CreateProfileRequest represents the payload for creating the caller's profile
type CreateProfileRequest struct {
	FirstName    string               `json:"firstName" binding:"required,min=2,max=100"`
	LastName     string               `json:"lastName" binding:"required,min=2,max=100"`
	Department   string               `json:"department" binding:"required,min=2,max=100"`
	Bio          *string              `json:"bio"`
	Experience   *string              `json:"experience"`
	Skills       []SkillInput         `json:"skills" binding:"dive"`
	Availability *domain.Availability `json:"availability"`
	HourlyRate   *float64             `json:"hourlyRate" binding:"omitempty,gte=0"`
}

// UpdateProfileRequest represents a partial profile update; nil fields are
// left untouched.
type UpdateProfileRequest struct {
	FirstName    *string              `json:"firstName" binding:"omitempty,min=2,max=100"`
	LastName     *string              `json:"lastName" binding:"omitempty,min=2,max=100"`
	Department   *string              `json:"department" binding:"omitempty,min=2,max=100"`
	Bio          *string              `json:"bio"`
	Experience   *string              `json:"experience"`
	Skills       []SkillInput         `json:"skills" binding:"omitempty,dive"`
	Availability *domain.Availability `json:"availability"`
	HourlyRate   *float64             `json:"hourlyRate" binding:"omitempty,gte=0"`
}

// ReviewResponse is a single rating shown on a profile
type ReviewResponse struct {
	ID        int64     `json:"id"`
	SessionID int64     `json:"sessionId"`
	RaterID   int64     `json:"raterId"`
	RaterName string    `json:"raterName"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// SkillResponse is a skill with proficiency as exposed on a profile
type SkillResponse struct {
	Name             string `json:"name"`
	ProficiencyLevel string `json:"proficiencyLevel"`
}

// ProfileResponse is a profile enriched with skills, the recomputed average
// rating and individual reviews.
type ProfileResponse struct {
	ID            int64                `json:"id"`
	UserID        int64                `json:"userId"`
	Name          string               `json:"name"`
	FirstName     string               `json:"firstName"`
	LastName      string               `json:"lastName"`
	Department    string               `json:"department"`
	Bio           *string              `json:"bio,omitempty"`
	Experience    *string              `json:"experience,omitempty"`
	HourlyRate    *float64             `json:"hourlyRate,omitempty"`
	Availability  *domain.Availability `json:"availability"`
	Skills        []SkillResponse      `json:"skills"`
	AverageRating *float64             `json:"averageRating"`
	Reviews       []ReviewResponse     `json:"reviews"`
}

// MentorSummary is a mentor as listed in search results
type MentorSummary struct {
	ID            int64                `json:"id"`
	Name          string               `json:"name"`
	Department    string               `json:"department"`
	Bio           *string              `json:"bio,omitempty"`
	HourlyRate    *float64             `json:"hourlyRate,omitempty"`
	Availability  *domain.Availability `json:"availability"`
	Skills        []SkillResponse      `json:"skills"`
	AverageRating *float64             `json:"averageRating"`
}

// MentorListResponse is the paginated mentor search result
type MentorListResponse struct {
	Mentors        []MentorSummary `json:"mentors"`
	PaginationInfo PaginationInfo  `json:"pagination"`
}
