package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lrslens/domain/statement"
)

func TestParseInstant(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
		want  time.Time
	}{
		{"rfc3339 utc", "2024-03-01T10:00:00Z", true, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"rfc3339 offset converts to utc", "2024-03-01T11:00:00+01:00", true, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"fractional seconds", "2024-03-01T10:00:00.250Z", true, time.Date(2024, 3, 1, 10, 0, 0, 250000000, time.UTC)},
		{"no zone", "2024-03-01T10:00:00", true, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"space separated", "2024-03-01 10:00:00", true, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"bare date", "2024-03-01", true, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"surrounding whitespace", "  2024-03-01T10:00:00Z  ", true, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"empty", "", false, time.Time{}},
		{"literal nan", "nan", false, time.Time{}},
		{"literal NaN", "NaN", false, time.Time{}},
		{"garbage", "yesterday-ish", false, time.Time{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ParseInstant(test.input)
			assert.Equal(t, test.valid, got.Valid)
			if test.valid {
				assert.True(t, got.Time.Equal(test.want), "got %v, want %v", got.Time, test.want)
				assert.Equal(t, time.UTC, got.Time.Location())
			}
		})
	}
}

func TestFoldKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Diagnóstica", "diagnostica"},
		{"  Módulo 3 – Animação  ", "modulo 3 – animacao"},
		{"Satisfação", "satisfacao"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, FoldKey(test.input), "FoldKey(%q)", test.input)
	}
}

func TestParseDecimalCommaIdempotence(t *testing.T) {
	comma, err := ParseDecimal("7,5")
	require.NoError(t, err)
	period, err := ParseDecimal("7.5")
	require.NoError(t, err)
	assert.Equal(t, 7.5, comma)
	assert.Equal(t, comma, period)

	_, err = ParseDecimal("n/a")
	assert.Error(t, err)
}

func TestStatementsKeepsCardinality(t *testing.T) {
	raw := []statement.Raw{
		{Timestamp: "2024-03-01T10:00:00Z", Module: " Módulo 1 ", User: "u1", Verb: "Completed", Activity: "Pergunta 1"},
		{Timestamp: "nan", Module: "", User: "u2", Verb: "viewed", Activity: ""},
	}

	stmts := Statements(raw)
	require.Len(t, stmts, 2)

	assert.Equal(t, "Módulo 1", stmts[0].Module)
	assert.Equal(t, "modulo 1", stmts[0].ModuleKey)
	assert.Equal(t, "Completed", stmts[0].Verb)
	assert.Equal(t, "completed", stmts[0].VerbKey)
	assert.True(t, stmts[0].Timestamp.Valid)

	// Malformed fields degrade, the row survives.
	assert.False(t, stmts[1].Timestamp.Valid)
	assert.Equal(t, "", stmts[1].ModuleKey)
}

func TestBuildCatalogue(t *testing.T) {
	stmts := Statements([]statement.Raw{
		{Module: "Módulo 2"},
		{Module: " Módulo 1 "},
		{Module: "Módulo 1"}, // same key after trimming
		{Module: ""},         // never catalogued
		{Module: "modulo 1"}, // folds onto the same key as Módulo 1
	})

	catalogue := BuildCatalogue(stmts)
	require.Len(t, catalogue, 2)
	assert.Equal(t, "modulo 1", catalogue[0].Key)
	assert.Equal(t, "Módulo 1", catalogue[0].Display)
	assert.Equal(t, "modulo 2", catalogue[1].Key)
}
