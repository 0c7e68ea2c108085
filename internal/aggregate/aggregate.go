// Package aggregate derives the grouped count and mean tables of both role
// views. Every function is a pure function of the normalized snapshot
// slices: deterministic for the same input, never mutating it.
package aggregate

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/montanaflynn/stats"

	"lrslens/domain/report"
	"lrslens/domain/statement"
	"lrslens/domain/snapshot"
	"lrslens/internal/normalize"
	"lrslens/internal/schema"
)

// VerbsOfInterest is the fixed allow-list of the verb pivot, in column
// order.
var VerbsOfInterest = []string{"completed", "answered", "progressed", "interacted", "attempted"}

// Totals computes the headline metrics: statement count, distinct modules,
// distinct users.
func Totals(stmts []statement.Statement) report.Totals {
	modules := make(map[string]struct{})
	users := make(map[string]struct{})
	for _, s := range stmts {
		if s.ModuleKey != "" {
			modules[s.ModuleKey] = struct{}{}
		}
		if s.User != "" {
			users[s.User] = struct{}{}
		}
	}
	return report.Totals{
		Statements: len(stmts),
		Modules:    len(modules),
		Users:      len(users),
	}
}

// ModuleCounts counts statements per module, reindexed against the
// catalogue: exactly one row per catalogue entry, zero-filled, in catalogue
// order.
func ModuleCounts(stmts []statement.Statement, catalogue statement.Catalogue) []report.ModuleCount {
	counts := make(map[string]int)
	for _, s := range stmts {
		counts[s.ModuleKey]++
	}

	rows := make([]report.ModuleCount, len(catalogue))
	for i, ref := range catalogue {
		rows[i] = report.ModuleCount{Module: ref.Display, Count: counts[ref.Key]}
	}
	return rows
}

// VerbCounts builds the all-verbs frequency table keyed by lowercased verb,
// ordered by count descending then label ascending. The display label is
// the lexicographically smallest original spelling of each key.
func VerbCounts(stmts []statement.Statement) []report.VerbCount {
	counts := make(map[string]int)
	displays := make(map[string]string)
	for _, s := range stmts {
		if s.VerbKey == "" {
			continue
		}
		counts[s.VerbKey]++
		display := strings.TrimSpace(s.Verb)
		if current, ok := displays[s.VerbKey]; !ok || display < current {
			displays[s.VerbKey] = display
		}
	}

	rows := make([]report.VerbCount, 0, len(counts))
	for key, count := range counts {
		rows = append(rows, report.VerbCount{Verb: displays[key], Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Verb < rows[j].Verb
	})
	return rows
}

// VerbPivot counts statements per (module, verb) for the allow-listed
// verbs, pivoted into columns in allow-list order. Rows cover the whole
// catalogue and every cell is defined, zero-filled when no statement
// matched.
func VerbPivot(stmts []statement.Statement, catalogue statement.Catalogue) report.VerbPivot {
	columns := make(map[string]int, len(VerbsOfInterest))
	for i, v := range VerbsOfInterest {
		columns[v] = i
	}

	cells := make(map[string][]int, len(catalogue))
	for _, ref := range catalogue {
		cells[ref.Key] = make([]int, len(VerbsOfInterest))
	}
	for _, s := range stmts {
		col, ok := columns[s.VerbKey]
		if !ok {
			continue
		}
		if row, ok := cells[s.ModuleKey]; ok {
			row[col]++
		}
	}

	pivot := report.VerbPivot{Verbs: VerbsOfInterest, Rows: make([]report.VerbPivotRow, len(catalogue))}
	for i, ref := range catalogue {
		pivot.Rows[i] = report.VerbPivotRow{Module: ref.Display, Counts: cells[ref.Key]}
	}
	return pivot
}

// QuestionFunnel pairs attempt counts with answered counts per question
// activity. Attempts are statements whose verb contains "attempt", answered
// ones contain "answer"; only activities whose display label starts with
// the marker are kept. Answered counts are aligned onto the attempt index,
// zero-filled for activities nobody answered; an answered count above the
// attempt count is reported as-is. Rows are ordered by attempts descending
// then label ascending.
func QuestionFunnel(stmts []statement.Statement, marker string) report.FunnelReport {
	attempts := make(map[string]int)
	answered := make(map[string]int)
	for _, s := range stmts {
		if !strings.HasPrefix(s.Activity, marker) {
			continue
		}
		if strings.Contains(s.VerbKey, "attempt") {
			attempts[s.Activity]++
		}
		if strings.Contains(s.VerbKey, "answer") {
			answered[s.Activity]++
		}
	}

	rows := make([]report.FunnelRow, 0, len(attempts))
	for activity, count := range attempts {
		rows = append(rows, report.FunnelRow{
			Activity: activity,
			Attempts: count,
			Answered: answered[activity],
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Attempts != rows[j].Attempts {
			return rows[i].Attempts > rows[j].Attempts
		}
		return rows[i].Activity < rows[j].Activity
	})
	return report.FunnelReport{Rows: rows}
}

// LikertMeans computes the mean numeric response per survey question
// column matching the pattern, rounded to one decimal. Cells are parsed
// leniently: a malformed value is excluded from the mean, never an error.
// No matching column yields an explicit MissingSchema result.
func LikertMeans(t snapshot.Table, pattern *regexp.Regexp) report.LikertReport {
	columns := schema.LikertColumns(t.Headers, pattern)
	if len(columns) == 0 {
		return report.LikertReport{MissingSchema: true}
	}

	means := make([]report.QuestionMean, 0, len(columns))
	for _, column := range columns {
		var values []float64
		for _, raw := range t.Column(column) {
			if v, err := normalize.ParseDecimal(raw); err == nil {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}
		mean, err := stats.Mean(values)
		if err != nil {
			continue
		}
		rounded, _ := stats.Round(mean, 1)
		means = append(means, report.QuestionMean{Question: column, Mean: rounded})
	}
	return report.LikertReport{Means: means}
}

// DailyCounts buckets statements per UTC day over valid timestamps only.
// Days between the first and last observed statement with no activity are
// zero-filled so the series is continuous.
func DailyCounts(stmts []statement.Statement) []report.DailyCount {
	counts := make(map[time.Time]int)
	var first, last time.Time
	for _, s := range stmts {
		if !s.Timestamp.Valid {
			continue
		}
		day := s.Timestamp.Time.Truncate(24 * time.Hour)
		counts[day]++
		if first.IsZero() || day.Before(first) {
			first = day
		}
		if last.IsZero() || day.After(last) {
			last = day
		}
	}
	if len(counts) == 0 {
		return nil
	}

	var rows []report.DailyCount
	for day := first; !day.After(last); day = day.Add(24 * time.Hour) {
		rows = append(rows, report.DailyCount{Day: day, Count: counts[day]})
	}
	return rows
}

// Distribution counts the non-empty values of one categorical series,
// ordered by count descending then label ascending.
func Distribution(values []string) []report.CategoryCount {
	counts := make(map[string]int)
	for _, v := range values {
		if v == "" {
			continue
		}
		counts[v]++
	}

	rows := make([]report.CategoryCount, 0, len(counts))
	for category, count := range counts {
		rows = append(rows, report.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}
