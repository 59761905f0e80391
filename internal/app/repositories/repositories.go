package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared sentinel for a missing row. Repositories return
// it untranslated; services map it onto the public error vocabulary.
var ErrNotFound = errors.New("record not found")

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    *UserRepository
	ProfileRepository *ProfileRepository
	SkillRepository   *SkillRepository
	RequestRepository *RequestRepository
	SessionRepository *SessionRepository
	RatingRepository  *RatingRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		ProfileRepository: NewProfileRepository(db),
		SkillRepository:   NewSkillRepository(db),
		RequestRepository: NewRequestRepository(db),
		SessionRepository: NewSessionRepository(db),
		RatingRepository:  NewRatingRepository(db),
	}
}
