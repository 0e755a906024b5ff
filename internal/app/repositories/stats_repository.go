package repositories

import (
	"context"
	"fmt"

	"github.com/dsu-aiml/portal/internal/app/models"
	"github.com/dsu-aiml/portal/internal/pkg/logger"
)

// statsQuery computes every counter in one statement. avgCgpa ignores students
// without a CGPA yet (cgpa = 0); avgAttendance includes every row.
const statsQuery = `
SELECT
	COUNT(*),
	COUNT(*) FILTER (WHERE LOWER(status) = 'active'),
	COALESCE(ROUND((AVG(cgpa) FILTER (WHERE cgpa > 0))::numeric, 2), 0)::float8,
	COALESCE(ROUND(AVG(attendance)::numeric, 1), 0)::float8,
	(SELECT COUNT(*) FROM faculty)
FROM students`

// StatsRepository computes department-wide aggregates
type StatsRepository struct {
	db DB
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Compute returns the current statistics
func (r *StatsRepository) Compute(ctx context.Context) (*models.Stats, error) {
	stats := &models.Stats{}
	err := r.db.QueryRow(ctx, statsQuery).Scan(
		&stats.Total, &stats.Active, &stats.AvgCGPA, &stats.AvgAttendance, &stats.Faculty,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error computing stats")
		return nil, fmt.Errorf("error computing stats: %w", err)
	}
	return stats, nil
}
