package extract

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"lrslens/domain/core"
	"lrslens/domain/snapshot"
	"lrslens/domain/statement"
	"lrslens/internal"
	"lrslens/internal/config"
	"lrslens/internal/errors"
	"lrslens/internal/normalize"
)

// Loader reads the four input extracts and assembles the immutable
// snapshot one pipeline run operates on.
type Loader struct {
	data config.DataConfig
	log  *internal.Logger
}

// NewLoader creates a snapshot loader for the configured extract paths
func NewLoader(data config.DataConfig, log *internal.Logger) *Loader {
	return &Loader{data: data, log: log.WithComponent("Loader")}
}

// Load reads the four tables concurrently, normalizes the statement stream
// and builds the module catalogue. The returned snapshot is never mutated
// afterwards; callers wanting fresh data load a new one.
func (l *Loader) Load(ctx context.Context) (*snapshot.Snapshot, error) {
	var statements, diagnostic, final, survey snapshot.Table

	g, _ := errgroup.WithContext(ctx)
	read := func(path string, dst *snapshot.Table) func() error {
		return func() error {
			t, err := NewTableReader(path).Read()
			if err != nil {
				return err
			}
			*dst = t
			return nil
		}
	}
	g.Go(read(l.data.StatementsFile, &statements))
	g.Go(read(l.data.DiagnosticFile, &diagnostic))
	g.Go(read(l.data.FinalFile, &final))
	g.Go(read(l.data.SurveyFile, &survey))
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to load input extracts")
	}

	raw := rawStatements(statements)
	normalized := normalize.Statements(raw)
	catalogue := normalize.BuildCatalogue(normalized)

	l.log.Info("snapshot loaded: %d statements, %d modules, %d survey rows",
		len(normalized), len(catalogue), len(survey.Rows))

	return &snapshot.Snapshot{
		ID:         core.NewID(),
		LoadedAt:   time.Now().UTC(),
		Statements: normalized,
		Catalogue:  catalogue,
		Diagnostic: diagnostic,
		Final:      final,
		Survey:     survey,
	}, nil
}

// rawStatements maps the statements table onto the raw record schema. The
// extract is expected to carry at least timestamp, module, user, verb and
// activity columns; absent cells degrade to empty fields.
func rawStatements(t snapshot.Table) []statement.Raw {
	raw := make([]statement.Raw, len(t.Rows))
	for i, row := range t.Rows {
		raw[i] = statement.Raw{
			Timestamp: row["timestamp"],
			Module:    row["module"],
			User:      row["user"],
			Verb:      row["verb"],
			Activity:  row["activity"],
		}
	}
	return raw
}
