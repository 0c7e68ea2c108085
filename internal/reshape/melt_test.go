package reshape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lrslens/domain/snapshot"
	"lrslens/internal/schema"
)

func surveyTable(rows ...map[string]string) snapshot.Table {
	return snapshot.Table{
		Headers: []string{
			"ID",
			"Q05_Concelho->Lisboa",
			"Q05_Concelho->Sintra",
			"Q06_Nacionalidade",
			"Q07_Nível->Básico",
			"Q07_Nível->Secundário",
		},
		Rows: rows,
	}
}

func TestMeltKeepsOnlyTruthyFlags(t *testing.T) {
	table := surveyTable(
		map[string]string{"ID": "r1", "Q05_Concelho->Lisboa": "True", "Q05_Concelho->Sintra": "False"},
		map[string]string{"ID": "r2", "Q05_Concelho->Lisboa": "0", "Q05_Concelho->Sintra": "1"},
		map[string]string{"ID": "r3"},
	)

	selections := Melt(table, "ID", "Q05_Concelho")
	require.Len(t, selections, 2)
	assert.Equal(t, "r1", selections[0].Respondent)
	assert.Equal(t, "Lisboa", selections[0].Category)
	assert.Equal(t, "r2", selections[1].Respondent)
	assert.Equal(t, "Sintra", selections[1].Category)
}

func TestMeltFanOut(t *testing.T) {
	table := surveyTable(
		map[string]string{"ID": "r1", "Q05_Concelho->Lisboa": "True", "Q05_Concelho->Sintra": "True"},
	)

	// Two true flags in one group yield two rows, not a deduplicated one.
	selections := Melt(table, "ID", "Q05_Concelho")
	require.Len(t, selections, 2)
	assert.Equal(t, selections[0].Respondent, selections[1].Respondent)
}

func TestMeltNoMatchingColumns(t *testing.T) {
	table := surveyTable(map[string]string{"ID": "r1"})
	assert.Empty(t, Melt(table, "ID", "Q99_Inexistente"))
}

func TestDemographics(t *testing.T) {
	table := surveyTable(
		map[string]string{
			"ID":                   "r1",
			"Q06_Nacionalidade":    "Portuguesa",
			"Q05_Concelho->Lisboa": "True",
			"Q07_Nível->Básico":    "True",
		},
		map[string]string{
			"ID":                "r2",
			"Q06_Nacionalidade": "Brasileira",
			// no district, no education flagged
		},
	)

	profiles := Demographics(table, schema.DefaultSurveySchema())
	require.Len(t, profiles, 2)

	assert.Equal(t, "Portuguesa", profiles[0].Nationality)
	assert.Equal(t, "Lisboa", profiles[0].District)
	assert.Equal(t, "Básico", profiles[0].Education)

	// Left join: missing selections stay empty instead of dropping the row.
	assert.Equal(t, "Brasileira", profiles[1].Nationality)
	assert.Equal(t, "", profiles[1].District)
	assert.Equal(t, "", profiles[1].Education)
}

func TestDemographicsFanOutMultiplies(t *testing.T) {
	table := surveyTable(
		map[string]string{
			"ID":                     "r1",
			"Q06_Nacionalidade":      "Portuguesa",
			"Q05_Concelho->Lisboa":   "True",
			"Q05_Concelho->Sintra":   "True",
			"Q07_Nível->Básico":      "True",
			"Q07_Nível->Secundário":  "True",
		},
	)

	// 2 districts × 2 education levels = 4 rows for the same respondent.
	profiles := Demographics(table, schema.DefaultSurveySchema())
	assert.Len(t, profiles, 4)
	for _, p := range profiles {
		assert.Equal(t, "r1", p.Respondent)
	}
}
