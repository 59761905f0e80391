package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/pkg/apperrors"
	"github.com/yigit/mentorhub/internal/pkg/dberrors"
)

// RatingRepository handles session rating database operations
type RatingRepository struct {
	db *pgxpool.Pool
}

// NewRatingRepository creates a new RatingRepository
func NewRatingRepository(db *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{db: db}
}

// Create inserts a rating. The unique constraint on (session_id, rater_id)
// is the source of truth for "already rated".
func (r *RatingRepository) Create(ctx context.Context, rating *models.Rating) (int64, error) {
	query := `
		INSERT INTO ratings (session_id, rater_id, rated_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		rating.SessionID, rating.RaterID, rating.RatedID, rating.Rating, rating.Comment).
		Scan(&rating.ID, &rating.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "ratings_session_id_rater_id_key") {
			return 0, apperrors.ErrAlreadyRated
		}
		return 0, fmt.Errorf("error creating rating: %w", err)
	}

	return rating.ID, nil
}

// ListForRated returns ratings received by the user, newest first, with the
// rater's display name for the review listing.
func (r *RatingRepository) ListForRated(ctx context.Context, ratedID int64) ([]models.Rating, error) {
	query := `
		SELECT r.id, r.session_id, r.rater_id, r.rated_id, r.rating, r.comment, r.created_at, u.name
		FROM ratings r
		JOIN users u ON r.rater_id = u.id
		WHERE r.rated_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, ratedID)
	if err != nil {
		return nil, fmt.Errorf("error querying ratings: %w", err)
	}
	defer rows.Close()

	var ratings []models.Rating
	for rows.Next() {
		var rating models.Rating
		err := rows.Scan(
			&rating.ID, &rating.SessionID, &rating.RaterID, &rating.RatedID,
			&rating.Rating, &rating.Comment, &rating.CreatedAt, &rating.RaterName)
		if err != nil {
			return nil, fmt.Errorf("error scanning rating row: %w", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rating rows: %w", err)
	}

	return ratings, nil
}

// ValuesForRated returns just the numeric rating values received by the
// user, for average computation.
func (r *RatingRepository) ValuesForRated(ctx context.Context, ratedID int64) ([]int, error) {
	query := `SELECT rating FROM ratings WHERE rated_id = $1`

	rows, err := r.db.Query(ctx, query, ratedID)
	if err != nil {
		return nil, fmt.Errorf("error querying rating values: %w", err)
	}
	defer rows.Close()

	var values []int
	for rows.Next() {
		var value int
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("error scanning rating value: %w", err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rating values: %w", err)
	}

	return values, nil
}
