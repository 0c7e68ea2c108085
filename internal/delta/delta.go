// Package delta pairs the diagnostic and final assessment score series and
// computes signed per-position deltas.
package delta

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"lrslens/domain/assessment"
	"lrslens/domain/snapshot"
	"lrslens/internal/errors"
	"lrslens/internal/normalize"
)

// ScoreColumn extracts the raw score texts of an assessment table: column 0
// is an identifier the scoring ignores, column 1 holds the locale-decimal
// score.
func ScoreColumn(t snapshot.Table) ([]string, error) {
	if len(t.Headers) < 2 {
		return nil, errors.SchemaMismatch("assessment table needs an identifier column and a score column")
	}
	return t.Column(t.Headers[1]), nil
}

// ParseScores parses one score series strictly. Unlike the rest of the
// pipeline, a value that fails to parse after separator normalization is a
// hard failure here: score tables are expected to be fully well-formed and
// a delta against a missing operand is meaningless.
func ParseScores(raw []string) ([]float64, error) {
	scores := make([]float64, len(raw))
	for i, s := range raw {
		v, err := normalize.ParseDecimal(s)
		if err != nil {
			return nil, errors.MalformedScore(i, s)
		}
		scores[i] = v
	}
	return scores, nil
}

// Pair joins the two score series by positional index up to the common
// length and computes delta = final − diagnostic per position, rounded to
// one decimal. The pairing is positional because the two extracts carry no
// shared respondent key; they are assumed co-ordered by the same anonymous
// submission sequence, and a reordered extract would silently mis-pair.
// Either series being empty yields an empty report, not an error.
//
// The summary carries the mean delta and, when both truncated series have
// at least two points and nonzero variance, the Pearson correlation
// between them.
func Pair(diagnostic, final []float64) assessment.DeltaReport {
	n := len(diagnostic)
	if len(final) < n {
		n = len(final)
	}
	if n == 0 {
		return assessment.DeltaReport{}
	}

	rows := make([]assessment.DeltaRow, n)
	deltas := make([]float64, n)
	for i := 0; i < n; i++ {
		d, _ := stats.Round(final[i]-diagnostic[i], 1)
		rows[i] = assessment.DeltaRow{
			Diagnostic: diagnostic[i],
			Final:      final[i],
			Delta:      d,
		}
		deltas[i] = d
	}

	rep := assessment.DeltaReport{Rows: rows}
	if mean, err := stats.Mean(deltas); err == nil {
		rep.MeanDelta, _ = stats.Round(mean, 1)
		rep.MeanValid = true
	}
	if n >= 2 {
		diag := diagnostic[:n]
		fin := final[:n]
		if stat.Variance(diag, nil) > 0 && stat.Variance(fin, nil) > 0 {
			rep.Correlation = stat.Correlation(diag, fin, nil)
			rep.CorrelationValid = true
		}
	}
	return rep
}
