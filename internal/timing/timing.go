// Package timing computes per-user elapsed time between two cohort
// milestones over the normalized statement stream.
package timing

import (
	"sort"
	"strings"
	"time"

	"github.com/montanaflynn/stats"

	"lrslens/domain/report"
	"lrslens/domain/statement"
	"lrslens/internal/normalize"
)

// StartPredicate matches a user's milestone-start statements: verb equals
// Verb and the folded module key contains ModuleContains.
type StartPredicate struct {
	Verb           string
	ModuleContains string
}

// EndPredicate matches milestone-end statements: verb in Verbs and the
// folded module key contains ModuleContains.
type EndPredicate struct {
	Verbs          []string
	ModuleContains string
}

// DefaultStart matches viewing the diagnostic assessment
func DefaultStart() StartPredicate {
	return StartPredicate{Verb: "viewed", ModuleContains: "diagnostica"}
}

// DefaultEnd matches submitting or answering the satisfaction survey
func DefaultEnd() EndPredicate {
	return EndPredicate{Verbs: []string{"submitted", "answered"}, ModuleContains: "satisf"}
}

// Elapsed computes, per user, the minutes between the earliest statement
// matching the start predicate and the latest matching the end predicate.
// Only users present in both groups qualify: a set intersection, never a
// join that fabricates pairs. Statements without a valid timestamp never
// qualify. Durations and the unweighted mean are rounded to one decimal;
// an empty intersection yields Report{Empty: true} with no mean computed.
func Elapsed(stmts []statement.Statement, start StartPredicate, end EndPredicate) report.TimingReport {
	startKey := normalize.FoldKey(start.ModuleContains)
	startVerb := normalize.VerbKey(start.Verb)
	endKey := normalize.FoldKey(end.ModuleContains)
	endVerbs := make(map[string]struct{}, len(end.Verbs))
	for _, v := range end.Verbs {
		endVerbs[normalize.VerbKey(v)] = struct{}{}
	}

	starts := make(map[string]time.Time)
	ends := make(map[string]time.Time)
	for _, s := range stmts {
		if !s.Timestamp.Valid || s.User == "" {
			continue
		}
		if s.VerbKey == startVerb && contains(s.ModuleKey, startKey) {
			if at, ok := starts[s.User]; !ok || s.Timestamp.Time.Before(at) {
				starts[s.User] = s.Timestamp.Time
			}
		}
		if _, ok := endVerbs[s.VerbKey]; ok && contains(s.ModuleKey, endKey) {
			if at, ok := ends[s.User]; !ok || s.Timestamp.Time.After(at) {
				ends[s.User] = s.Timestamp.Time
			}
		}
	}

	var rows []report.UserTiming
	var minutes []float64
	for user, started := range starts {
		ended, ok := ends[user]
		if !ok {
			continue
		}
		m := ended.Sub(started).Seconds() / 60
		rounded, _ := stats.Round(m, 1)
		rows = append(rows, report.UserTiming{User: user, Minutes: rounded})
		minutes = append(minutes, rounded)
	}

	if len(rows) == 0 {
		return report.TimingReport{Empty: true}
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].User < rows[j].User })

	mean, _ := stats.Mean(minutes)
	roundedMean, _ := stats.Round(mean, 1)
	return report.TimingReport{Rows: rows, MeanMinutes: roundedMean}
}

func contains(key, substring string) bool {
	if substring == "" {
		return true
	}
	return strings.Contains(key, substring)
}
