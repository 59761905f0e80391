package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/domain"
	"github.com/yigit/mentorhub/internal/pkg/apperrors"
	"github.com/yigit/mentorhub/internal/pkg/dberrors"
)

// ProfileRepository handles profile database operations
type ProfileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new profile. Availability goes through the canonical
// codec, so a malformed window never reaches the column.
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) (int64, error) {
	availabilityJSON, err := domain.EncodeAvailability(profile.Availability)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO profiles (user_id, first_name, last_name, department, bio, experience, hourly_rate, availability)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err = r.db.QueryRow(ctx, query,
		profile.UserID, profile.FirstName, profile.LastName, profile.Department,
		profile.Bio, profile.Experience, profile.HourlyRate, availabilityJSON).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "profiles_user_id_key") {
			return 0, apperrors.ErrProfileAlreadyExists
		}
		return 0, fmt.Errorf("error creating profile: %w", err)
	}

	return id, nil
}

// GetByUserID retrieves a profile by owner id, ErrNotFound when absent
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	query := `
		SELECT p.id, p.user_id, p.first_name, p.last_name, p.department, p.bio,
			p.experience, p.hourly_rate, p.availability, p.created_at, p.updated_at,
			u.id, u.name, u.email, u.role, u.created_at
		FROM profiles p
		JOIN users u ON p.user_id = u.id
		WHERE p.user_id = $1
	`

	var profile models.Profile
	var user models.User
	var availabilityJSON []byte
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID, &profile.UserID, &profile.FirstName, &profile.LastName,
		&profile.Department, &profile.Bio, &profile.Experience, &profile.HourlyRate,
		&availabilityJSON, &profile.CreatedAt, &profile.UpdatedAt,
		&user.ID, &user.Name, &user.Email, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error querying profile: %w", err)
	}

	profile.Availability, err = domain.DecodeAvailability(availabilityJSON)
	if err != nil {
		return nil, fmt.Errorf("stored availability for user %d is malformed: %w", userID, err)
	}
	profile.User = &user

	return &profile, nil
}

// GetAvailability returns only the availability window of a user, nil when
// the profile is missing or no window is set.
func (r *ProfileRepository) GetAvailability(ctx context.Context, userID int64) (*domain.Availability, error) {
	var availabilityJSON []byte
	query := `SELECT availability FROM profiles WHERE user_id = $1`
	err := r.db.QueryRow(ctx, query, userID).Scan(&availabilityJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying availability: %w", err)
	}

	availability, err := domain.DecodeAvailability(availabilityJSON)
	if err != nil {
		return nil, fmt.Errorf("stored availability for user %d is malformed: %w", userID, err)
	}
	return availability, nil
}

// ProfileUpdate carries the fields of a partial profile update. Nil fields
// are left unchanged; HasAvailability marks that a new window was provided.
// A window can be replaced but not cleared through an update.
type ProfileUpdate struct {
	FirstName       *string
	LastName        *string
	Department      *string
	Bio             *string
	Experience      *string
	HourlyRate      *float64
	Availability    *domain.Availability
	HasAvailability bool
}

// Update applies a partial update to the caller's profile
func (r *ProfileRepository) Update(ctx context.Context, userID int64, update ProfileUpdate) error {
	builder := r.sb.Update("profiles").Set("updated_at", squirrel.Expr("NOW()")).Where(squirrel.Eq{"user_id": userID})

	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
	}
	if update.Department != nil {
		builder = builder.Set("department", *update.Department)
	}
	if update.Bio != nil {
		builder = builder.Set("bio", *update.Bio)
	}
	if update.Experience != nil {
		builder = builder.Set("experience", *update.Experience)
	}
	if update.HourlyRate != nil {
		builder = builder.Set("hourly_rate", *update.HourlyRate)
	}
	if update.HasAvailability {
		availabilityJSON, err := domain.EncodeAvailability(update.Availability)
		if err != nil {
			return err
		}
		builder = builder.Set("availability", availabilityJSON)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("error building profile update SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// SearchMentors lists mentor profiles, optionally filtered by a skill name
// fragment, with pagination.
func (r *ProfileRepository) SearchMentors(ctx context.Context, skill *string, offset uint64, limit int) ([]models.Profile, int64, error) {
	builder := r.sb.Select(
		"p.id", "p.user_id", "p.first_name", "p.last_name", "p.department",
		"p.bio", "p.experience", "p.hourly_rate", "p.availability",
		"p.created_at", "p.updated_at",
		"u.id", "u.name", "u.email", "u.role", "u.created_at",
		"COUNT(*) OVER() AS total_count",
	).
		From("profiles p").
		Join("users u ON p.user_id = u.id").
		Where(squirrel.Eq{"u.role": models.RoleMentor})

	if skill != nil && *skill != "" {
		builder = builder.Where(
			`EXISTS (
				SELECT 1 FROM user_skills us
				JOIN skills s ON us.skill_id = s.id
				WHERE us.user_id = p.user_id AND s.name ILIKE ?
			)`, "%"+*skill+"%")
	}

	sql, args, err := builder.OrderBy("u.name").Offset(offset).Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building mentor search SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error searching mentors: %w", err)
	}
	defer rows.Close()

	var profiles []models.Profile
	var total int64
	for rows.Next() {
		var profile models.Profile
		var user models.User
		var availabilityJSON []byte
		err := rows.Scan(
			&profile.ID, &profile.UserID, &profile.FirstName, &profile.LastName,
			&profile.Department, &profile.Bio, &profile.Experience, &profile.HourlyRate,
			&availabilityJSON, &profile.CreatedAt, &profile.UpdatedAt,
			&user.ID, &user.Name, &user.Email, &user.Role, &user.CreatedAt,
			&total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning mentor row: %w", err)
		}

		profile.Availability, err = domain.DecodeAvailability(availabilityJSON)
		if err != nil {
			return nil, 0, fmt.Errorf("stored availability for user %d is malformed: %w", profile.UserID, err)
		}
		profile.User = &user
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating mentor rows: %w", err)
	}

	return profiles, total, nil
}
