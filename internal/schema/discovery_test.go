package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagGroup(t *testing.T) {
	headers := []string{
		"ID",
		"Q05_Concelho->Lisboa",
		"Q05_Concelho->Sintra",
		"Q06_Nacionalidade",
		"Q07_Nível->Secundário",
	}

	group := FlagGroup(headers, "Q05_Concelho")
	require.Len(t, group, 2)
	assert.Equal(t, "Q05_Concelho->Lisboa", group[0].Column)
	assert.Equal(t, "Lisboa", group[0].Category)
	assert.Equal(t, "Sintra", group[1].Category)
}

func TestFlagGroupWithoutDelimiter(t *testing.T) {
	group := FlagGroup([]string{"Q05_ConcelhoOutro"}, "Q05_Concelho")
	require.Len(t, group, 1)
	// No delimiter: the full header is its own category.
	assert.Equal(t, "Q05_ConcelhoOutro", group[0].Category)
}

func TestFlagGroupNoMatchIsEmpty(t *testing.T) {
	group := FlagGroup([]string{"ID", "Q06_Nacionalidade"}, "Q05_Concelho")
	assert.Empty(t, group)
}

func TestLikertColumns(t *testing.T) {
	headers := []string{
		"ID",
		"Q01_Conteúdo",
		"Q02",
		"Q03_Formador",
		"Q04_Comentários",
		"Q05_Concelho->Lisboa",
		"q01_minusculas",
	}

	columns := LikertColumns(headers, DefaultLikertPattern)
	assert.Equal(t, []string{"Q01_Conteúdo", "Q02", "Q03_Formador", "q01_minusculas"}, columns)
}

func TestLikertColumnsNoMatch(t *testing.T) {
	assert.Empty(t, LikertColumns([]string{"ID", "Q04_Comentários"}, DefaultLikertPattern))
}
