package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dsu-aiml/portal/internal/app/models"
)

// StudentStore is what seeding needs from the student repository
type StudentStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, s *models.Student) error
}

// FacultyStore is what seeding needs from the faculty repository
type FacultyStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, f *models.Faculty) (int64, error)
}

// CreateDefaultData fills each table with its default rows when, and only when,
// that table is empty. Running it again is a no-op.
func CreateDefaultData(ctx context.Context, students StudentStore, faculty FacultyStore, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Students/Faculty)...")
	var finalErr error

	n, err := students.Count(ctx)
	switch {
	case err != nil:
		lgr.Error().Err(err).Msg("Error counting students")
		finalErr = errors.Join(finalErr, err)
	case n > 0:
		lgr.Info().Int64("count", n).Msg("Students table already populated, skipping seed")
	default:
		rows := DefaultStudents()
		for _, s := range rows {
			if err := students.Create(ctx, s); err != nil {
				lgr.Error().Err(err).Str("regNo", s.RegNo).Msg("Error seeding student")
				finalErr = errors.Join(finalErr, fmt.Errorf("seed student %s: %w", s.RegNo, err))
			}
		}
		lgr.Info().Int("count", len(rows)).Msg("Student seed data inserted")
	}

	n, err = faculty.Count(ctx)
	switch {
	case err != nil:
		lgr.Error().Err(err).Msg("Error counting faculty")
		finalErr = errors.Join(finalErr, err)
	case n > 0:
		lgr.Info().Int64("count", n).Msg("Faculty table already populated, skipping seed")
	default:
		rows := DefaultFaculty()
		for _, f := range rows {
			if _, err := faculty.Create(ctx, f); err != nil {
				lgr.Error().Err(err).Str("name", f.Name).Msg("Error seeding faculty")
				finalErr = errors.Join(finalErr, fmt.Errorf("seed faculty %s: %w", f.Name, err))
			}
		}
		lgr.Info().Int("count", len(rows)).Msg("Faculty seed data inserted")
	}

	if finalErr != nil {
		lgr.Warn().Err(finalErr).Msg("Default data creation finished with errors")
	} else {
		lgr.Info().Msg("Default data check/creation finished")
	}
	return finalErr
}
