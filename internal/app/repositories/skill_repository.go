package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/mentorhub/internal/app/models"
)

// SkillRepository handles skill and user_skills database operations
type SkillRepository struct {
	db *pgxpool.Pool
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{db: db}
}

// defaultProficiency is used when a skill is attached without a level.
const defaultProficiency = "intermediate"

// ReplaceUserSkills swaps a user's skill set for the given one inside a
// single transaction. Skill names are upserted into the shared catalog.
func (r *SkillRepository) ReplaceUserSkills(ctx context.Context, userID int64, skills []models.UserSkill) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning skill transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM user_skills WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("error clearing user skills: %w", err)
	}

	for _, skill := range skills {
		// Upsert keeps the catalog unique by name and always yields the id.
		var skillID int64
		err := tx.QueryRow(ctx, `
			INSERT INTO skills (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, skill.Name).Scan(&skillID)
		if err != nil {
			return fmt.Errorf("error upserting skill %q: %w", skill.Name, err)
		}

		proficiency := skill.ProficiencyLevel
		if proficiency == "" {
			proficiency = defaultProficiency
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO user_skills (user_id, skill_id, proficiency_level)
			VALUES ($1, $2, $3)
		`, userID, skillID, proficiency)
		if err != nil {
			return fmt.Errorf("error attaching skill %q: %w", skill.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing skill transaction: %w", err)
	}
	return nil
}

// ListForUser returns a user's skills with proficiency levels
func (r *SkillRepository) ListForUser(ctx context.Context, userID int64) ([]models.UserSkill, error) {
	query := `
		SELECT s.name, us.proficiency_level
		FROM skills s
		JOIN user_skills us ON s.id = us.skill_id
		WHERE us.user_id = $1
		ORDER BY s.name
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying user skills: %w", err)
	}
	defer rows.Close()

	var skills []models.UserSkill
	for rows.Next() {
		var skill models.UserSkill
		if err := rows.Scan(&skill.Name, &skill.ProficiencyLevel); err != nil {
			return nil, fmt.Errorf("error scanning skill row: %w", err)
		}
		skills = append(skills, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating skill rows: %w", err)
	}

	return skills, nil
}

// ListForUsers returns the skills of several users keyed by user id, for
// enriching request listings in one query.
func (r *SkillRepository) ListForUsers(ctx context.Context, userIDs []int64) (map[int64][]models.UserSkill, error) {
	skillsByUser := make(map[int64][]models.UserSkill, len(userIDs))
	if len(userIDs) == 0 {
		return skillsByUser, nil
	}

	query := `
		SELECT us.user_id, s.name, us.proficiency_level
		FROM user_skills us
		JOIN skills s ON us.skill_id = s.id
		WHERE us.user_id = ANY($1)
		ORDER BY s.name
	`

	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("error querying skills for users: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID int64
		var skill models.UserSkill
		if err := rows.Scan(&userID, &skill.Name, &skill.ProficiencyLevel); err != nil {
			return nil, fmt.Errorf("error scanning skill row: %w", err)
		}
		skillsByUser[userID] = append(skillsByUser[userID], skill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating skill rows: %w", err)
	}

	return skillsByUser, nil
}
