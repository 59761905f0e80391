package models

import (
	"time"

	"github.com/yigit/mentorhub/internal/domain"
)

// MentorshipRequest defines the request model based on the
// 'mentorship_requests' table. Status only ever changes through the
// transitions in the domain package; deletion is the mentee withdrawing a
// still-pending request.
type MentorshipRequest struct {
	ID        int64                `json:"id" db:"id"`
	MenteeID  int64                `json:"menteeId" db:"mentee_id"`
	MentorID  int64                `json:"mentorId" db:"mentor_id"`
	Message   *string              `json:"message,omitempty" db:"message"`
	Status    domain.RequestStatus `json:"status" db:"status"`
	CreatedAt time.Time            `json:"createdAt" db:"created_at"`
	Mentor    *User                `json:"mentor,omitempty"` // Relation, no db tag
	Mentee    *User                `json:"mentee,omitempty"` // Relation, no db tag
}

// Session defines the session model based on the 'sessions' table. Sessions
// are never deleted; cancelled and completed rows remain as history. Start
// and end times are naive local timestamps.
type Session struct {
	ID        int64                `json:"id" db:"id"`
	RequestID int64                `json:"requestId" db:"request_id"`
	StartTime time.Time            `json:"startTime" db:"start_time"`
	EndTime   time.Time            `json:"endTime" db:"end_time"`
	Status    domain.SessionStatus `json:"status" db:"status"`
	Notes     *string              `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time            `json:"createdAt" db:"created_at"`
	MentorID  int64                `json:"mentorId"` // Joined from the request, no db tag
	MenteeID  int64                `json:"menteeId"` // Joined from the request, no db tag
	Mentor    *User                `json:"mentor,omitempty"`
	Mentee    *User                `json:"mentee,omitempty"`
}

// Rating defines the rating model based on the 'ratings' table. One rating
// per (session, rater) pair; each side of a completed session may rate the
// other independently.
type Rating struct {
	ID        int64     `json:"id" db:"id"`
	SessionID int64     `json:"sessionId" db:"session_id"`
	RaterID   int64     `json:"raterId" db:"rater_id"`
	RatedID   int64     `json:"ratedId" db:"rated_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   *string   `json:"comment,omitempty" db:"comment"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	RaterName string    `json:"raterName,omitempty"` // Joined from users, no db tag
}
