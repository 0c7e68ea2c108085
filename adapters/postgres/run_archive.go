package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"lrslens/internal/errors"
	"lrslens/ports"
)

const runArchiveSchema = `
CREATE TABLE IF NOT EXISTS report_runs (
	id         TEXT PRIMARY KEY,
	view       TEXT NOT NULL,
	payload    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`

// RunArchiveRepository persists composed views in PostgreSQL
type RunArchiveRepository struct {
	db *sqlx.DB
}

// NewRunArchiveRepository creates the repository and bootstraps its schema
// idempotently.
func NewRunArchiveRepository(db *sqlx.DB) (*RunArchiveRepository, error) {
	if _, err := db.Exec(runArchiveSchema); err != nil {
		return nil, errors.Wrap(err, "failed to create report_runs table")
	}
	return &RunArchiveRepository{db: db}, nil
}

// Save stores one composed view
func (r *RunArchiveRepository) Save(ctx context.Context, run ports.ArchivedRun) error {
	query := `
		INSERT INTO report_runs (id, view, payload, created_at)
		VALUES ($1, $2, $3, $4)`
	if _, err := r.db.ExecContext(ctx, query, run.ID.String(), run.View, run.Payload, run.CreatedAt); err != nil {
		return errors.Wrap(err, "failed to save report run")
	}
	return nil
}

// Recent returns the most recently archived views, newest first
func (r *RunArchiveRepository) Recent(ctx context.Context, limit int) ([]ports.ArchivedRun, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, view, payload, created_at
		FROM report_runs
		ORDER BY created_at DESC
		LIMIT $1`
	var runs []ports.ArchivedRun
	if err := r.db.SelectContext(ctx, &runs, query, limit); err != nil {
		return nil, errors.Wrap(err, "failed to list report runs")
	}
	return runs, nil
}
