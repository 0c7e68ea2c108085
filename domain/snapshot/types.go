package snapshot

import (
	"time"

	"lrslens/domain/core"
	"lrslens/domain/statement"
)

// Table is one flat extract as read from disk: trimmed headers in source
// order plus one string map per data row. Cells absent from a short row are
// simply missing from the map.
type Table struct {
	Headers []string            `json:"headers"`
	Rows    []map[string]string `json:"rows"`
}

// Column returns the values of one column in row order. Missing cells
// become empty strings so the result always has one value per row.
func (t Table) Column(name string) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[name]
	}
	return values
}

// HasColumn reports whether the table has a header with the given name
func (t Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Snapshot is the immutable in-memory copy of the four input extracts for
// one pipeline run. Every core function takes it (or a slice of it) by
// reference and never mutates it, so composing views from the same snapshot
// is idempotent.
type Snapshot struct {
	ID       core.ID   `json:"id"`
	LoadedAt time.Time `json:"loaded_at"`

	Statements []statement.Statement `json:"statements"`
	Catalogue  statement.Catalogue   `json:"catalogue"`

	Diagnostic Table `json:"diagnostic"`
	Final      Table `json:"final"`
	Survey     Table `json:"survey"`
}
