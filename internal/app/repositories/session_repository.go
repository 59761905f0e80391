package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/domain"
)

// SessionRepository handles mentoring session database operations
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// ListBookedSlotsTx returns every session the user already has, regardless
// of which request it belongs to. Runs inside the booking transaction so the
// conflict check and the insert see the same state.
func (r *SessionRepository) ListBookedSlotsTx(ctx context.Context, tx pgx.Tx, userID int64) ([]domain.BookedSlot, error) {
	query := `
		SELECT s.start_time, s.status
		FROM sessions s
		JOIN mentorship_requests mr ON s.request_id = mr.id
		WHERE mr.mentor_id = $1 OR mr.mentee_id = $1
	`

	rows, err := tx.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying booked slots: %w", err)
	}
	defer rows.Close()

	var booked []domain.BookedSlot
	for rows.Next() {
		var slot domain.BookedSlot
		if err := rows.Scan(&slot.Start, &slot.Status); err != nil {
			return nil, fmt.Errorf("error scanning booked slot: %w", err)
		}
		booked = append(booked, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booked slots: %w", err)
	}

	return booked, nil
}

// CreateTx inserts a scheduled session inside the booking transaction
func (r *SessionRepository) CreateTx(ctx context.Context, tx pgx.Tx, session *models.Session) (int64, error) {
	query := `
		INSERT INTO sessions (request_id, start_time, end_time, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := tx.QueryRow(ctx, query,
		session.RequestID, session.StartTime, session.EndTime, domain.SessionScheduled, session.Notes).
		Scan(&session.ID, &session.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating session: %w", err)
	}
	session.Status = domain.SessionScheduled

	return session.ID, nil
}

// ListInvolving returns all sessions the user participates in, most recent
// start time first.
func (r *SessionRepository) ListInvolving(ctx context.Context, userID int64) ([]models.Session, error) {
	query := `
		SELECT s.id, s.request_id, s.start_time, s.end_time, s.status, s.notes, s.created_at,
			mr.mentor_id, mr.mentee_id, mentor.name, mentee.name
		FROM sessions s
		JOIN mentorship_requests mr ON s.request_id = mr.id
		JOIN users mentor ON mr.mentor_id = mentor.id
		JOIN users mentee ON mr.mentee_id = mentee.id
		WHERE mr.mentor_id = $1 OR mr.mentee_id = $1
		ORDER BY s.start_time DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var session models.Session
		var mentorName, menteeName string
		err := rows.Scan(
			&session.ID, &session.RequestID, &session.StartTime, &session.EndTime,
			&session.Status, &session.Notes, &session.CreatedAt,
			&session.MentorID, &session.MenteeID, &mentorName, &menteeName)
		if err != nil {
			return nil, fmt.Errorf("error scanning session row: %w", err)
		}
		session.Mentor = &models.User{ID: session.MentorID, Name: mentorName}
		session.Mentee = &models.User{ID: session.MenteeID, Name: menteeName}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}

	return sessions, nil
}

// GetForParticipant loads a session only when the user is one of its two
// parties. ErrNotFound covers both a missing session and an outsider's id.
func (r *SessionRepository) GetForParticipant(ctx context.Context, sessionID, userID int64) (*models.Session, error) {
	query := `
		SELECT s.id, s.request_id, s.start_time, s.end_time, s.status, s.notes, s.created_at,
			mr.mentor_id, mr.mentee_id
		FROM sessions s
		JOIN mentorship_requests mr ON s.request_id = mr.id
		WHERE s.id = $1 AND (mr.mentor_id = $2 OR mr.mentee_id = $2)
	`

	var session models.Session
	err := r.db.QueryRow(ctx, query, sessionID, userID).Scan(
		&session.ID, &session.RequestID, &session.StartTime, &session.EndTime,
		&session.Status, &session.Notes, &session.CreatedAt,
		&session.MentorID, &session.MenteeID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error querying session: %w", err)
	}

	return &session, nil
}

// UpdateStatus transitions a scheduled session in one atomic conditional
// update. mentorOnly restricts the actor to the request's mentor, which is
// how completion stays mentor-gated while cancellation is open to both
// parties.
func (r *SessionRepository) UpdateStatus(ctx context.Context, sessionID, userID int64, to domain.SessionStatus, notes *string, mentorOnly bool) (bool, error) {
	actorFilter := "(mr.mentor_id = $4 OR mr.mentee_id = $4)"
	if mentorOnly {
		actorFilter = "mr.mentor_id = $4"
	}

	query := fmt.Sprintf(`
		UPDATE sessions s
		SET status = $1, notes = COALESCE($2, s.notes)
		FROM mentorship_requests mr
		WHERE s.request_id = mr.id
			AND s.id = $3
			AND %s
			AND s.status = $5
	`, actorFilter)

	result, err := r.db.Exec(ctx, query, to, notes, sessionID, userID, domain.SessionScheduled)
	if err != nil {
		return false, fmt.Errorf("error updating session status: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// CountScheduledOnDate reports how many scheduled sessions the user already
// has starting on the given calendar date. Used by the slot listing to mark
// the whole day as taken.
func (r *SessionRepository) CountScheduledOnDate(ctx context.Context, userID int64, date time.Time) (int, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `
		SELECT COUNT(*)
		FROM sessions s
		JOIN mentorship_requests mr ON s.request_id = mr.id
		WHERE (mr.mentor_id = $1 OR mr.mentee_id = $1)
			AND s.status = $2
			AND s.start_time >= $3 AND s.start_time < $4
	`

	var count int
	err := r.db.QueryRow(ctx, query, userID, domain.SessionScheduled, dayStart, dayEnd).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting scheduled sessions: %w", err)
	}

	return count, nil
}
