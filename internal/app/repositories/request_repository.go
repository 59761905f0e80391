package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/domain"
)

// RequestRepository handles mentorship request database operations
type RequestRepository struct {
	db *pgxpool.Pool
}

// NewRequestRepository creates a new RequestRepository
func NewRequestRepository(db *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{db: db}
}

// RequestWithParties is a request row joined with both party names and the
// mentor's availability window, as needed by the listing endpoint.
type RequestWithParties struct {
	models.MentorshipRequest
	MentorName         string
	MenteeName         string
	MentorAvailability *domain.Availability
}

// Create inserts a new pending request and returns its id
func (r *RequestRepository) Create(ctx context.Context, request *models.MentorshipRequest) (int64, error) {
	query := `
		INSERT INTO mentorship_requests (mentee_id, mentor_id, message, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		request.MenteeID, request.MentorID, request.Message, domain.RequestPending).
		Scan(&request.ID, &request.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating mentorship request: %w", err)
	}
	request.Status = domain.RequestPending

	return request.ID, nil
}

// ListInvolving returns all requests the user participates in, on either
// side, newest first.
func (r *RequestRepository) ListInvolving(ctx context.Context, userID int64) ([]RequestWithParties, error) {
	query := `
		SELECT mr.id, mr.mentee_id, mr.mentor_id, mr.message, mr.status, mr.created_at,
			mentor.name, mentee.name, p.availability
		FROM mentorship_requests mr
		JOIN users mentor ON mr.mentor_id = mentor.id
		JOIN users mentee ON mr.mentee_id = mentee.id
		LEFT JOIN profiles p ON mentor.id = p.user_id
		WHERE mr.mentor_id = $1 OR mr.mentee_id = $1
		ORDER BY mr.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying requests: %w", err)
	}
	defer rows.Close()

	var requests []RequestWithParties
	for rows.Next() {
		var request RequestWithParties
		var availabilityJSON []byte
		err := rows.Scan(
			&request.ID, &request.MenteeID, &request.MentorID, &request.Message,
			&request.Status, &request.CreatedAt,
			&request.MentorName, &request.MenteeName, &availabilityJSON)
		if err != nil {
			return nil, fmt.Errorf("error scanning request row: %w", err)
		}

		request.MentorAvailability, err = domain.DecodeAvailability(availabilityJSON)
		if err != nil {
			return nil, fmt.Errorf("stored availability for user %d is malformed: %w", request.MentorID, err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating request rows: %w", err)
	}

	return requests, nil
}

// UpdateStatusAsMentor performs the accept/reject transition as one atomic
// conditional update. The row only changes when it exists, is addressed to
// the acting mentor and still carries the expected prior status; the
// affected-row count tells the caller whether the swap happened.
func (r *RequestRepository) UpdateStatusAsMentor(ctx context.Context, requestID, mentorID int64, from, to domain.RequestStatus) (bool, error) {
	query := `
		UPDATE mentorship_requests
		SET status = $1
		WHERE id = $2 AND mentor_id = $3 AND status = $4
	`

	result, err := r.db.Exec(ctx, query, to, requestID, mentorID, from)
	if err != nil {
		return false, fmt.Errorf("error updating request status: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// DeleteAsMentee withdraws a still-pending request owned by the acting
// mentee. Same compare-and-swap shape as UpdateStatusAsMentor.
func (r *RequestRepository) DeleteAsMentee(ctx context.Context, requestID, menteeID int64) (bool, error) {
	query := `
		DELETE FROM mentorship_requests
		WHERE id = $1 AND mentee_id = $2 AND status = $3
	`

	result, err := r.db.Exec(ctx, query, requestID, menteeID, domain.RequestPending)
	if err != nil {
		return false, fmt.Errorf("error deleting request: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// GetAcceptedForUpdate loads an accepted request inside the booking
// transaction, locking the row so concurrent bookings against the same
// request serialize. ErrNotFound covers both a missing row and one that is
// not accepted.
func (r *RequestRepository) GetAcceptedForUpdate(ctx context.Context, tx pgx.Tx, requestID int64) (*models.MentorshipRequest, error) {
	query := `
		SELECT id, mentee_id, mentor_id, message, status, created_at
		FROM mentorship_requests
		WHERE id = $1 AND status = $2
		FOR UPDATE
	`

	var request models.MentorshipRequest
	err := tx.QueryRow(ctx, query, requestID, domain.RequestAccepted).Scan(
		&request.ID, &request.MenteeID, &request.MentorID, &request.Message,
		&request.Status, &request.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error querying accepted request: %w", err)
	}

	return &request, nil
}
