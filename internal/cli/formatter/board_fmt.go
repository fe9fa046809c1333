package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BoardCard is one lead card on the kanban board.
type BoardCard struct {
	Title    string
	Budget   string // already formatted, empty when not discussed
	Temp     string // already styled badge
	Overdue  bool
	OpenTask int
}

// BoardColumn is one pipeline stage column.
type BoardColumn struct {
	Title string
	Cards []BoardCard
}

const (
	cardInnerWidth = 22
	columnGap      = 1
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim).
			PaddingLeft(1).
			PaddingRight(1)

	cardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorHeader).
				PaddingLeft(1).
				PaddingRight(1)

	columnTitleStyle = lipgloss.NewStyle().
				Foreground(ColorHeader).
				Bold(true).
				PaddingLeft(1)

	columnTitleSelStyle = lipgloss.NewStyle().
				Foreground(ColorFg).
				Background(ColorHeader).
				Bold(true).
				PaddingLeft(1).
				PaddingRight(1)
)

// RenderBoard renders the kanban columns side by side. selCol/selCard mark
// the focused card; selCard -1 highlights only the column header.
func RenderBoard(columns []BoardColumn, selCol, selCard int) string {
	rendered := make([]string, 0, len(columns))
	for i, col := range columns {
		rendered = append(rendered, renderColumn(col, i == selCol, selCard))
	}
	gap := strings.Repeat(" ", columnGap)

	joined := make([]string, 0, len(rendered)*2)
	for i, col := range rendered {
		if i > 0 {
			joined = append(joined, gap)
		}
		joined = append(joined, col)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joined...)
}

func renderColumn(col BoardColumn, selected bool, selCard int) string {
	title := fmt.Sprintf("%s %s", col.Title, Dim(fmt.Sprintf("(%d)", len(col.Cards))))

	var b strings.Builder
	if selected {
		b.WriteString(columnTitleSelStyle.Render(title))
	} else {
		b.WriteString(columnTitleStyle.Render(title))
	}
	b.WriteString("\n")

	if len(col.Cards) == 0 {
		b.WriteString("\n " + Dim("empty") + "\n")
		return b.String()
	}

	for i, card := range col.Cards {
		style := cardStyle
		if selected && i == selCard {
			style = cardSelectedStyle
		}
		b.WriteString(style.Render(renderCard(card)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderCard(card BoardCard) string {
	var lines []string
	lines = append(lines, Bold(PadRight(card.Title, cardInnerWidth)))

	meta := card.Temp
	if card.Budget != "" {
		meta += "  " + StyleFg.Render(card.Budget)
	}
	lines = append(lines, meta)

	var flags []string
	if card.Overdue {
		flags = append(flags, StyleRed.Render("▲ overdue"))
	}
	if card.OpenTask > 0 {
		flags = append(flags, Dim(fmt.Sprintf("☐ %d", card.OpenTask)))
	}
	if len(flags) > 0 {
		lines = append(lines, strings.Join(flags, "  "))
	}

	return strings.Join(lines, "\n")
}
