package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boardFixture() []BoardColumn {
	return []BoardColumn{
		{
			Title: "Prospection",
			Cards: []BoardCard{
				{Title: "Marcos Vinicius", Budget: "R$ 150,00", Temp: "● hot", Overdue: true, OpenTask: 1},
			},
		},
		{
			Title: "Briefing",
			Cards: []BoardCard{
				{Title: "Clara Nunes", Temp: "● warm"},
			},
		},
		{Title: "Signed"},
	}
}

func TestRenderBoard_ShowsColumnsAndCounts(t *testing.T) {
	out := stripANSI(RenderBoard(boardFixture(), 0, 0))

	assert.Contains(t, out, "Prospection (1)")
	assert.Contains(t, out, "Briefing (1)")
	assert.Contains(t, out, "Signed (0)")
	assert.Contains(t, out, "Marcos Vinicius")
	assert.Contains(t, out, "Clara Nunes")
	assert.Contains(t, out, "empty")
}

func TestRenderBoard_CardBadges(t *testing.T) {
	out := stripANSI(RenderBoard(boardFixture(), 0, 0))

	assert.Contains(t, out, "▲ overdue")
	assert.Contains(t, out, "☐ 1")
	assert.Contains(t, out, "R$ 150,00")
}

func TestRenderBoard_BudgetOmittedWhenUnset(t *testing.T) {
	cols := []BoardColumn{{Title: "Briefing", Cards: []BoardCard{{Title: "Clara", Temp: "● warm"}}}}
	out := stripANSI(RenderBoard(cols, 0, 0))

	assert.Contains(t, out, "Clara")
	assert.NotContains(t, out, "R$")
}
