package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dsu-aiml/portal/internal/app/models"
	"github.com/dsu-aiml/portal/internal/pkg/logger"
)

// ContactRepository stores contact queries. Queries are write-only over the API.
type ContactRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db DB) *ContactRepository {
	return &ContactRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Create appends a contact query and fills in its id and timestamp
func (r *ContactRepository) Create(ctx context.Context, q *models.ContactQuery) (int64, error) {
	sql, args, err := r.sb.Insert("contact_queries").
		Columns("name", "email", "type", "message").
		Values(q.Name, q.Email, q.Type, q.Message).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create contact query SQL")
		return 0, fmt.Errorf("failed to build create contact query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&q.ID, &q.CreatedAt); err != nil {
		logger.Error().Err(err).Str("email", q.Email).Msg("Error executing create contact query")
		return 0, fmt.Errorf("error creating contact query: %w", err)
	}

	return q.ID, nil
}
