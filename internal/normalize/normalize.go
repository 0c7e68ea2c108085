// Package normalize cleans raw statement fields one at a time: permissive
// timestamp parsing, verb case-folding and module trimming plus diacritic
// folding. Cleaning is best-effort: malformed fields degrade to null or
// empty values instead of aborting the batch.
package normalize

import (
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"lrslens/domain/core"
	"lrslens/domain/statement"
)

// instantLayouts are tried in order against trimmed timestamp text. The
// extracts mix RFC3339 strings with space-separated and date-only variants.
var instantLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// foldTransformer strips combining marks after NFD decomposition, which
// turns "Diagnóstica" into "Diagnostica".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ParseInstant parses one timestamp string. Empty text and the literal
// "nan" the export job writes for absent values yield a null instant, as
// does any text no layout accepts. Valid instants are converted to UTC.
func ParseInstant(s string) core.Instant {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return core.NullInstant()
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return core.NewInstant(t)
		}
	}
	return core.NullInstant()
}

// FoldKey produces the canonical grouping key of a module label: trimmed,
// diacritic-folded, lowercased.
func FoldKey(s string) string {
	s = strings.TrimSpace(s)
	if folded, _, err := transform.String(foldTransformer, s); err == nil {
		s = folded
	}
	return strings.ToLower(s)
}

// VerbKey produces the canonical matching key of a verb label
func VerbKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseDecimal parses locale-formatted decimal text, accepting either a
// comma or a period as the decimal separator. "7,5" and "7.5" parse to the
// identical float.
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}

// Statements normalizes a raw statement batch. The output has the same
// cardinality as the input; individual malformed fields degrade to null or
// empty values.
func Statements(raw []statement.Raw) []statement.Statement {
	out := make([]statement.Statement, len(raw))
	for i, r := range raw {
		out[i] = statement.Statement{
			Timestamp: ParseInstant(r.Timestamp),
			Module:    strings.TrimSpace(r.Module),
			ModuleKey: FoldKey(r.Module),
			User:      strings.TrimSpace(r.User),
			Verb:      r.Verb,
			VerbKey:   VerbKey(r.Verb),
			Activity:  strings.TrimSpace(r.Activity),
		}
	}
	return out
}

// BuildCatalogue collects the distinct non-empty modules observed in the
// batch, deduplicated by folded key and sorted by display label. Two
// spellings that fold to the same key share one catalogue entry; the
// lexicographically smallest display form wins so the result is
// deterministic.
func BuildCatalogue(stmts []statement.Statement) statement.Catalogue {
	displays := make(map[string]string)
	for _, s := range stmts {
		if s.ModuleKey == "" {
			continue
		}
		if current, ok := displays[s.ModuleKey]; !ok || s.Module < current {
			displays[s.ModuleKey] = s.Module
		}
	}

	catalogue := make(statement.Catalogue, 0, len(displays))
	for key, display := range displays {
		catalogue = append(catalogue, statement.ModuleRef{Key: key, Display: display})
	}
	sort.Slice(catalogue, func(i, j int) bool {
		return catalogue[i].Display < catalogue[j].Display
	})
	return catalogue
}
