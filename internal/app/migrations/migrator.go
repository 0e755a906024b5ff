package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	schema "github.com/dsu-aiml/portal/migrations"
)

// Migrator applies the embedded schema migrations with goose
type Migrator struct {
	provider *goose.Provider
	logger   zerolog.Logger
}

// NewMigrator creates a migrator over db using the embedded migration files.
func NewMigrator(db *sql.DB, lgr zerolog.Logger) (*Migrator, error) {
	return newMigrator(db, schema.FS, lgr)
}

func newMigrator(db *sql.DB, fsys fs.FS, lgr zerolog.Logger) (*Migrator, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return &Migrator{provider: provider, logger: lgr}, nil
}

// Up applies every pending migration. Already applied versions are skipped, so
// calling it on every boot is safe.
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	if len(results) == 0 {
		m.logger.Info().Msg("Schema is up to date")
	}
	for _, r := range results {
		m.logger.Info().
			Int64("version", r.Source.Version).
			Str("file", r.Source.Path).
			Dur("duration", r.Duration).
			Msg("Migration applied")
	}
	return nil
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	r, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	m.logger.Info().Int64("version", r.Source.Version).Str("file", r.Source.Path).Msg("Migration rolled back")
	return nil
}

// Status logs the state of every known migration.
func (m *Migrator) Status(ctx context.Context) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to read migration status: %w", err)
	}
	for _, s := range statuses {
		evt := m.logger.Info().Int64("version", s.Source.Version).Str("file", s.Source.Path).Str("state", string(s.State))
		if !s.AppliedAt.IsZero() {
			evt = evt.Time("appliedAt", s.AppliedAt)
		}
		evt.Msg("Migration status")
	}
	return nil
}
