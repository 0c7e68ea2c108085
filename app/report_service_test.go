package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lrslens/domain/snapshot"
	"lrslens/domain/statement"
	"lrslens/internal"
	"lrslens/internal/config"
	"lrslens/internal/errors"
	"lrslens/internal/normalize"
)

func testAnalysis() config.AnalysisConfig {
	return config.AnalysisConfig{
		QuestionMarker:      "Pergunta",
		StartVerb:           "viewed",
		StartModuleContains: "diagnostica",
		EndVerbs:            []string{"submitted", "answered"},
		EndModuleContains:   "satisf",
	}
}

func testService() *ReportService {
	return NewReportService(testAnalysis(), internal.NewLogger(internal.LogLevelError))
}

func testSnapshot() *snapshot.Snapshot {
	raw := []statement.Raw{
		{Timestamp: "2024-03-01T10:00:00Z", Module: "Avaliação Diagnóstica", User: "u1", Verb: "viewed", Activity: "Intro"},
		{Timestamp: "2024-03-01T10:05:00Z", Module: "Módulo 1", User: "u1", Verb: "attempted", Activity: "Pergunta 1"},
		{Timestamp: "2024-03-01T10:06:00Z", Module: "Módulo 1", User: "u1", Verb: "answered", Activity: "Pergunta 1"},
		{Timestamp: "2024-03-01T10:30:00Z", Module: "Inquérito de Satisfação", User: "u1", Verb: "submitted", Activity: ""},
		{Timestamp: "2024-03-02T09:00:00Z", Module: "Módulo 2", User: "u2", Verb: "completed", Activity: ""},
	}
	stmts := normalize.Statements(raw)

	return &snapshot.Snapshot{
		Statements: stmts,
		Catalogue:  normalize.BuildCatalogue(stmts),
		Diagnostic: snapshot.Table{
			Headers: []string{"Submissão", "Nota"},
			Rows: []map[string]string{
				{"Submissão": "1", "Nota": "5,0"},
				{"Submissão": "2", "Nota": "6,5"},
				{"Submissão": "3", "Nota": "7,0"},
			},
		},
		Final: snapshot.Table{
			Headers: []string{"Submissão", "Nota"},
			Rows: []map[string]string{
				{"Submissão": "1", "Nota": "6,0"},
				{"Submissão": "2", "Nota": "7,0"},
			},
		},
		Survey: snapshot.Table{
			Headers: []string{"ID", "Q01_Conteúdo", "Q06_Nacionalidade", "Q05_Concelho->Lisboa", "Q07_Nível->Básico"},
			Rows: []map[string]string{
				{"ID": "r1", "Q01_Conteúdo": "4", "Q06_Nacionalidade": "Portuguesa", "Q05_Concelho->Lisboa": "True", "Q07_Nível->Básico": "True"},
				{"ID": "r2", "Q01_Conteúdo": "5", "Q06_Nacionalidade": "Brasileira"},
			},
		},
	}
}

func TestAdminOverview(t *testing.T) {
	view := testService().AdminOverview(testSnapshot())

	assert.Equal(t, 5, view.Totals.Statements)
	assert.Equal(t, 4, view.Totals.Modules)
	assert.Equal(t, 2, view.Totals.Users)
	assert.Len(t, view.ModuleCounts, 4, "one row per catalogue module")
	assert.Len(t, view.VerbPivot.Rows, 4)
	require.NotEmpty(t, view.DailyCounts)
	assert.Len(t, view.DailyCounts, 2, "two consecutive activity days, no gaps")
}

func TestLearnerOverview(t *testing.T) {
	view, err := testService().LearnerOverview(testSnapshot())
	require.NoError(t, err)

	require.Len(t, view.Funnel.Rows, 1)
	assert.Equal(t, "Pergunta 1", view.Funnel.Rows[0].Activity)

	require.Len(t, view.Deltas.Rows, 2, "deltas truncate to the shorter score series")
	assert.Equal(t, 1.0, view.Deltas.Rows[0].Delta)
	assert.Equal(t, 0.5, view.Deltas.Rows[1].Delta)

	require.Len(t, view.Likert.Means, 1)
	assert.Equal(t, 4.5, view.Likert.Means[0].Mean)

	require.Len(t, view.Timing.Rows, 1)
	assert.Equal(t, "u1", view.Timing.Rows[0].User)
	assert.Equal(t, 30.0, view.Timing.Rows[0].Minutes)

	require.Len(t, view.Profiles, 2)
	require.Len(t, view.Nationalities, 2)
	assert.Equal(t, "Lisboa", view.Districts[0].Category)

	assert.Empty(t, view.Notices, "healthy snapshot carries no notices")
}

func TestLearnerOverviewNotices(t *testing.T) {
	snap := testSnapshot()
	snap.Statements = nil
	snap.Survey = snapshot.Table{
		Headers: []string{"ID", "Q04_Comentários"},
		Rows:    []map[string]string{{"ID": "r1"}},
	}

	view, err := testService().LearnerOverview(snap)
	require.NoError(t, err)

	assert.True(t, view.Funnel.Empty())
	assert.True(t, view.Likert.MissingSchema)
	assert.True(t, view.Timing.Empty)
	assert.Len(t, view.Notices, 3)
}

func TestLearnerOverviewMalformedScoreIsHardError(t *testing.T) {
	snap := testSnapshot()
	snap.Final.Rows[1]["Nota"] = "n/a"

	_, err := testService().LearnerOverview(snap)
	require.Error(t, err)
	assert.Equal(t, errors.CodeMalformedScore, errors.GetCode(err))
}
