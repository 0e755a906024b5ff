package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool the repositories use. Every repository call
// runs a single statement, so a pool is all that is needed.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
	FacultyRepository *FacultyRepository
	ContactRepository *ContactRepository
	StatsRepository   *StatsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DB) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(db),
		FacultyRepository: NewFacultyRepository(db),
		ContactRepository: NewContactRepository(db),
		StatsRepository:   NewStatsRepository(db),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// allowedFields keeps only the keys present in allowed. Column names in SET clauses
// therefore never come from client input.
func allowedFields(fields map[string]interface{}, allowed []string) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for _, col := range allowed {
		if v, ok := fields[col]; ok {
			out[col] = v
		}
	}
	return out
}
