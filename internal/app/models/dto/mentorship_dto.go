package dto

import (
	"time"

	"github.com/yigit/mentorhub/internal/domain"
)

// CreateRequestRequest represents a mentee's mentorship request payload
type CreateRequestRequest struct {
	MentorID int64   `json:"mentorId" binding:"required,min=1"`
	Message  *string `json:"message" binding:"omitempty,max=1000"`
}

// UpdateRequestStatusRequest is the mentor's accept/reject decision. The
// request lifecycle has no other reachable target states.
type UpdateRequestStatusRequest struct {
	Status domain.RequestStatus `json:"status" binding:"required,oneof=accepted rejected"`
}

// RequestCounterpart is the other party of a request as shown in listings
type RequestCounterpart struct {
	ID           int64                `json:"id"`
	Name         string               `json:"name"`
	Skills       []SkillResponse      `json:"skills,omitempty"`
	Availability *domain.Availability `json:"availability,omitempty"`
}

// RequestResponse is a mentorship request enriched with both parties
type RequestResponse struct {
	ID        int64                `json:"id"`
	MenteeID  int64                `json:"menteeId"`
	MentorID  int64                `json:"mentorId"`
	Message   *string              `json:"message,omitempty"`
	Status    domain.RequestStatus `json:"status"`
	CreatedAt time.Time            `json:"createdAt"`
	Mentor    RequestCounterpart   `json:"mentor"`
	Mentee    RequestCounterpart   `json:"mentee"`
}

// RequestListResponse wraps the caller's requests
type RequestListResponse struct {
	Requests []RequestResponse `json:"requests"`
}

// CreateSessionRequest books a session from an accepted request. Timestamps
// are naive local-time strings in "YYYY-MM-DD HH:MM:SS" form.
type CreateSessionRequest struct {
	RequestID int64  `json:"requestId" binding:"required,min=1"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// UpdateSessionStatusRequest moves a session out of scheduled
type UpdateSessionStatusRequest struct {
	Status domain.SessionStatus `json:"status" binding:"required,oneof=completed cancelled"`
	Notes  *string              `json:"notes" binding:"omitempty,max=2000"`
}

// SessionResponse is a session enriched with both parties
type SessionResponse struct {
	ID        int64                `json:"id"`
	RequestID int64                `json:"requestId"`
	StartTime string               `json:"startTime"`
	EndTime   string               `json:"endTime"`
	Status    domain.SessionStatus `json:"status"`
	Notes     *string              `json:"notes,omitempty"`
	MentorID  int64                `json:"mentorId"`
	MenteeID  int64                `json:"menteeId"`
	Mentor    RequestCounterpart   `json:"mentor"`
	Mentee    RequestCounterpart   `json:"mentee"`
}

// SessionListResponse wraps the caller's sessions, newest start time first
type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

// CreateRatingRequest rates the other participant of a completed session
type CreateRatingRequest struct {
	SessionID int64   `json:"sessionId" binding:"required,min=1"`
	RatedID   int64   `json:"ratedId" binding:"required,min=1"`
	Rating    int     `json:"rating" binding:"required,min=1,max=5"`
	Comment   *string `json:"comment" binding:"omitempty,max=2000"`
}

// RatingResponse is a stored rating
type RatingResponse struct {
	ID        int64   `json:"id"`
	SessionID int64   `json:"sessionId"`
	RaterID   int64   `json:"raterId"`
	RatedID   int64   `json:"ratedId"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
}

// SlotAvailabilityResponse is one fixed slot with its computed viability for
// the caller against the queried mentors.
type SlotAvailabilityResponse struct {
	Start  domain.ClockTime `json:"start"`
	End    domain.ClockTime `json:"end"`
	Viable bool             `json:"viable"`
}

// SlotListResponse enumerates the bookable slots for a date. DateBooked
// reflects the caller's own calendar; a true value blocks the whole day
// regardless of per-slot viability.
type SlotListResponse struct {
	Date       string                     `json:"date"`
	DateBooked bool                       `json:"dateBooked"`
	Slots      []SlotAvailabilityResponse `json:"slots"`
}
