package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// defaultSkills is the starter skill catalog users can attach to profiles
var defaultSkills = []string{
	"JavaScript",
	"Python",
	"Java",
	"React",
	"Node.js",
	"SQL",
	"Data Science",
	"Machine Learning",
	"Web Development",
	"Mobile Development",
	"C",
	"C++",
	"TypeScript",
	"Angular",
	"Vue.js",
	"AWS",
	"Docker",
	"Kubernetes",
	"DevOps",
	"UI/UX Design",
	"Go",
}

// CreateDefaultData seeds the skill catalog if entries are missing. Existing
// skills are left untouched, so this is safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Skills)...")

	var finalErr error
	inserted := 0
	for _, name := range defaultSkills {
		tag, err := dbPool.Exec(ctx,
			`INSERT INTO skills (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			lgr.Error().Err(err).Str("skill", name).Msg("Error seeding skill")
			finalErr = errors.Join(finalErr, fmt.Errorf("seeding skill %q: %w", name, err))
			continue
		}
		if tag.RowsAffected() > 0 {
			inserted++
		}
	}

	lgr.Info().Int("inserted", inserted).Msg("Default skill catalog checked")
	return finalErr
}
