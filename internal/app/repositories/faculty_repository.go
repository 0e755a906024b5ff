package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/dsu-aiml/portal/internal/app/models"
	"github.com/dsu-aiml/portal/internal/pkg/apperrors"
	"github.com/dsu-aiml/portal/internal/pkg/logger"
)

// FacultyUpdatableColumns is the allow-list for partial faculty updates.
var FacultyUpdatableColumns = []string{
	"name", "designation", "qualification", "experience", "email", "phone", "subjects", "is_hod",
}

var facultyColumns = []string{
	"id", "name", "designation", "qualification", "experience",
	"email", "phone", "subjects", "is_hod", "created_at",
}

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db DB) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanFaculty(row pgx.Row, f *models.Faculty) error {
	return row.Scan(&f.ID, &f.Name, &f.Designation, &f.Qualification, &f.Experience,
		&f.Email, &f.Phone, &f.Subjects, &f.IsHOD, &f.CreatedAt)
}

// Create inserts a new faculty member and fills in the generated id and timestamp
func (r *FacultyRepository) Create(ctx context.Context, f *models.Faculty) (int64, error) {
	sql, args, err := r.sb.Insert("faculty").
		Columns("name", "designation", "qualification", "experience", "email", "phone", "subjects", "is_hod").
		Values(f.Name, f.Designation, f.Qualification, f.Experience, f.Email, f.Phone, f.Subjects, f.IsHOD).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create faculty SQL")
		return 0, fmt.Errorf("failed to build create faculty query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&f.ID, &f.CreatedAt); err != nil {
		logger.Error().Err(err).Str("name", f.Name).Msg("Error executing create faculty query")
		return 0, fmt.Errorf("error creating faculty: %w", err)
	}

	return f.ID, nil
}

// GetByID retrieves a faculty member by ID
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	sql, args, err := r.sb.Select(facultyColumns...).
		From("faculty").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get faculty by ID SQL")
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	f := &models.Faculty{}
	if err := scanFaculty(r.db.QueryRow(ctx, sql, args...), f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error scanning faculty row")
		return nil, fmt.Errorf("error getting faculty by ID: %w", err)
	}

	return f, nil
}

func (r *FacultyRepository) buildListQuery() (string, []interface{}, error) {
	return r.sb.Select(facultyColumns...).
		From("faculty").
		OrderBy("is_hod DESC", "experience DESC").
		ToSql()
}

// List retrieves all faculty, department head first, then by experience
func (r *FacultyRepository) List(ctx context.Context) ([]*models.Faculty, error) {
	sql, args, err := r.buildListQuery()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list faculty SQL")
		return nil, fmt.Errorf("failed to build list faculty query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list faculty query")
		return nil, fmt.Errorf("error querying faculty: %w", err)
	}
	defer rows.Close()

	faculty := []*models.Faculty{}
	for rows.Next() {
		f := &models.Faculty{}
		if err := scanFaculty(rows, f); err != nil {
			logger.Error().Err(err).Msg("Error scanning faculty row during list")
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		faculty = append(faculty, f)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating faculty rows")
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}

	return faculty, nil
}

func (r *FacultyRepository) buildUpdateQuery(id int64, fields map[string]interface{}) (string, []interface{}, error) {
	return r.sb.Update("faculty").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// Update applies a partial update. Keys outside FacultyUpdatableColumns are dropped.
func (r *FacultyRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (int64, error) {
	fields = allowedFields(fields, FacultyUpdatableColumns)
	if len(fields) == 0 {
		return 0, apperrors.ErrNoValidFields
	}

	sql, args, err := r.buildUpdateQuery(id, fields)
	if err != nil {
		logger.Error().Err(err).Msg("Error building update faculty SQL")
		return 0, fmt.Errorf("failed to build update faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error executing update faculty query")
		return 0, fmt.Errorf("error updating faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return 0, apperrors.ErrFacultyNotFound
	}
	return cmdTag.RowsAffected(), nil
}

// Delete deletes a faculty member by ID
func (r *FacultyRepository) Delete(ctx context.Context, id int64) (int64, error) {
	sql, args, err := r.sb.Delete("faculty").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete faculty SQL")
		return 0, fmt.Errorf("failed to build delete faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error executing delete faculty query")
		return 0, fmt.Errorf("error deleting faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return 0, apperrors.ErrFacultyNotFound
	}
	return cmdTag.RowsAffected(), nil
}

// Exists checks whether a faculty member with the ID exists
func (r *FacultyRepository) Exists(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("faculty").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building faculty exists SQL")
		return false, fmt.Errorf("failed to build faculty exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error checking faculty existence")
		return false, fmt.Errorf("error checking faculty existence: %w", err)
	}
	return exists, nil
}

// Count returns the number of faculty rows
func (r *FacultyRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, r.sb, "faculty")
}
