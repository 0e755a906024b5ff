package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/dsu-aiml/portal/internal/app/models"
	"github.com/dsu-aiml/portal/internal/pkg/apperrors"
	"github.com/dsu-aiml/portal/internal/pkg/dberrors"
	"github.com/dsu-aiml/portal/internal/pkg/logger"
)

// studentRegNoIndex is the unique index enforcing case-insensitive reg_no uniqueness.
const studentRegNoIndex = "students_reg_no_upper_key"

// StudentUpdatableColumns is the allow-list for partial student updates.
var StudentUpdatableColumns = []string{
	"name", "year", "semester", "section", "dob", "email", "phone",
	"blood_group", "cgpa", "attendance", "mentor", "status",
}

var studentColumns = []string{
	"reg_no", "name", "programme", "year", "semester", "section", "dob",
	"email", "phone", "blood_group", "cgpa", "attendance", "mentor", "status",
}

var studentSummaryColumns = []string{
	"reg_no", "name", "year", "semester", "section", "cgpa", "attendance", "status",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db DB) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// matchRegNo compares case-insensitively; callers pass reg already upper-cased.
func matchRegNo(reg string) squirrel.Eq {
	return squirrel.Eq{"UPPER(reg_no)": reg}
}

// GetByRegNo retrieves a student by registration number
func (r *StudentRepository) GetByRegNo(ctx context.Context, reg string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(matchRegNo(reg)).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s := &models.Student{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&s.RegNo, &s.Name, &s.Programme, &s.Year, &s.Semester, &s.Section, &s.DOB,
		&s.Email, &s.Phone, &s.BloodGroup, &s.CGPA, &s.Attendance, &s.Mentor, &s.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("regNo", reg).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	return s, nil
}

// buildListQuery turns the filter into a parameterized SELECT. Filters are ANDed;
// section and status compare case-insensitively, search is a case-sensitive substring
// match on name or reg_no.
func (r *StudentRepository) buildListQuery(filter models.StudentFilter) (string, []interface{}, error) {
	q := r.sb.Select(studentSummaryColumns...).From("students")

	if filter.Year != "" {
		q = q.Where(squirrel.Eq{"year": filter.Year})
	}
	if filter.Section != "" {
		q = q.Where(squirrel.Eq{"UPPER(section)": strings.ToUpper(filter.Section)})
	}
	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"LOWER(status)": strings.ToLower(filter.Status)})
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		q = q.Where(squirrel.Or{
			squirrel.Like{"name": pattern},
			squirrel.Like{"reg_no": pattern},
		})
	}

	// Byte-wise ordering on the text year; see DESIGN.md on roman numerals.
	return q.OrderBy(`year COLLATE "C" ASC NULLS FIRST`, `reg_no COLLATE "C" ASC`).ToSql()
}

// List retrieves student summaries matching the filter
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]*models.StudentSummary, error) {
	sql, args, err := r.buildListQuery(filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.StudentSummary{}
	for rows.Next() {
		s := &models.StudentSummary{}
		if err := rows.Scan(&s.RegNo, &s.Name, &s.Year, &s.Semester, &s.Section, &s.CGPA, &s.Attendance, &s.Status); err != nil {
			logger.Error().Err(err).Msg("Error scanning student summary row")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Create inserts a new student. A reg_no clash (in any letter case) yields apperrors.ErrRegNoExists.
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns(studentColumns...).
		Values(s.RegNo, s.Name, s.Programme, s.Year, s.Semester, s.Section, s.DOB,
			s.Email, s.Phone, s.BloodGroup, s.CGPA, s.Attendance, s.Mentor, s.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.CreatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentRegNoIndex) {
			logger.Warn().Str("regNo", s.RegNo).Msg("Attempted to create student with duplicate reg_no")
			return apperrors.ErrRegNoExists
		}
		logger.Error().Err(err).Str("regNo", s.RegNo).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

func (r *StudentRepository) buildUpdateQuery(reg string, fields map[string]interface{}) (string, []interface{}, error) {
	return r.sb.Update("students").
		SetMap(fields).
		Where(matchRegNo(reg)).
		ToSql()
}

// Update applies a partial update. Keys outside StudentUpdatableColumns are dropped.
// It returns the number of rows changed; zero rows is apperrors.ErrStudentNotFound.
func (r *StudentRepository) Update(ctx context.Context, reg string, fields map[string]interface{}) (int64, error) {
	fields = allowedFields(fields, StudentUpdatableColumns)
	if len(fields) == 0 {
		return 0, apperrors.ErrNoValidFields
	}

	sql, args, err := r.buildUpdateQuery(reg, fields)
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return 0, fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("regNo", reg).Msg("Error executing update student query")
		return 0, fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return 0, apperrors.ErrStudentNotFound
	}
	return cmdTag.RowsAffected(), nil
}

// Delete removes a student. Zero rows affected is apperrors.ErrStudentNotFound.
func (r *StudentRepository) Delete(ctx context.Context, reg string) (int64, error) {
	sql, args, err := r.sb.Delete("students").
		Where(matchRegNo(reg)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return 0, fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("regNo", reg).Msg("Error executing delete student query")
		return 0, fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return 0, apperrors.ErrStudentNotFound
	}
	return cmdTag.RowsAffected(), nil
}

// Exists checks whether a student with the registration number exists
func (r *StudentRepository) Exists(ctx context.Context, reg string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("students").
		Where(matchRegNo(reg)).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student exists SQL")
		return false, fmt.Errorf("failed to build student exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Str("regNo", reg).Msg("Error checking student existence")
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// Count returns the number of student rows
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, r.sb, "students")
}

func countRows(ctx context.Context, db DB, sb squirrel.StatementBuilderType, table string) (int64, error) {
	sql, args, err := sb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query for %s: %w", table, err)
	}

	var n int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error counting rows")
		return 0, fmt.Errorf("error counting %s: %w", table, err)
	}
	return n, nil
}

// escapeLike makes s match literally inside a LIKE pattern (backslash is the
// default LIKE escape character in PostgreSQL).
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
