package delta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lrslens/domain/snapshot"
	"lrslens/internal/errors"
)

func TestScoreColumn(t *testing.T) {
	table := snapshot.Table{
		Headers: []string{"Submissão", "Nota"},
		Rows: []map[string]string{
			{"Submissão": "1", "Nota": "12,5"},
			{"Submissão": "2", "Nota": "14"},
		},
	}

	raw, err := ScoreColumn(table)
	require.NoError(t, err)
	assert.Equal(t, []string{"12,5", "14"}, raw)
}

func TestScoreColumnMissingColumn(t *testing.T) {
	table := snapshot.Table{Headers: []string{"Submissão"}}
	_, err := ScoreColumn(table)
	require.Error(t, err)
	assert.Equal(t, errors.CodeSchemaMismatch, errors.GetCode(err))
}

func TestParseScoresStrict(t *testing.T) {
	scores, err := ParseScores([]string{"5,0", "6.5", "7,0"})
	require.NoError(t, err)
	assert.Equal(t, []float64{5.0, 6.5, 7.0}, scores)

	_, err = ParseScores([]string{"5,0", "n/a"})
	require.Error(t, err, "a malformed score is a hard failure, never coerced to missing")
	assert.Equal(t, errors.CodeMalformedScore, errors.GetCode(err))
	assert.Contains(t, err.Error(), "row 1")
}

func TestPairTruncatesToCommonLength(t *testing.T) {
	rep := Pair([]float64{5.0, 6.5, 7.0}, []float64{6.0, 7.0})
	require.Len(t, rep.Rows, 2)
	assert.Equal(t, 1.0, rep.Rows[0].Delta)
	assert.Equal(t, 0.5, rep.Rows[1].Delta)
}

func TestPairEmptySeries(t *testing.T) {
	rep := Pair(nil, []float64{6.0})
	assert.True(t, rep.Empty())
	assert.False(t, rep.MeanValid)
	assert.False(t, rep.CorrelationValid)
}

func TestPairSummary(t *testing.T) {
	rep := Pair([]float64{5.0, 6.0, 7.0}, []float64{6.0, 7.5, 8.0})
	require.True(t, rep.MeanValid)
	assert.Equal(t, 1.2, rep.MeanDelta)
	assert.True(t, rep.CorrelationValid)
	assert.InDelta(t, 0.961, rep.Correlation, 0.01)
}

func TestPairNoCorrelationForConstantSeries(t *testing.T) {
	rep := Pair([]float64{5.0, 5.0}, []float64{6.0, 7.0})
	assert.True(t, rep.MeanValid)
	// Zero variance leaves the correlation undefined rather than NaN.
	assert.False(t, rep.CorrelationValid)
}

func TestPairSinglePairHasNoCorrelation(t *testing.T) {
	rep := Pair([]float64{5.0}, []float64{6.0})
	require.Len(t, rep.Rows, 1)
	assert.False(t, rep.CorrelationValid)
}
