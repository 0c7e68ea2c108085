package ports

import (
	"context"
	"time"

	"lrslens/domain/core"
)

// ArchivedRun is one composed view captured for later inspection: which
// view, when, and its JSON payload.
type ArchivedRun struct {
	ID        core.RunID `json:"id" db:"id"`
	View      string     `json:"view" db:"view"`
	Payload   []byte     `json:"payload" db:"payload"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// RunArchive persists composed views per pipeline run. The pipeline core
// never touches it; archiving is an adapter concern wired in only when a
// database is configured.
type RunArchive interface {
	Save(ctx context.Context, run ArchivedRun) error
	Recent(ctx context.Context, limit int) ([]ArchivedRun, error)
}
