package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tr013432-design/spazio/internal/cli/formatter"
)

// paletteEntry is one runnable action in the command palette.
type paletteEntry struct {
	label  string
	action tea.Cmd
}

// paletteModel is the ctrl+k overlay: a filter input over a fixed list of
// labeled actions. Filtering is case-insensitive substring match.
type paletteModel struct {
	input   textinput.Model
	entries []paletteEntry
	matches []int
	cursor  int
}

func newPalette(entries []paletteEntry) *paletteModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "type to filter..."
	ti.CharLimit = 80
	ti.Focus()

	p := &paletteModel{
		input:   ti,
		entries: entries,
	}
	p.refilter()
	return p
}

// paletteClosedMsg tells the appModel to drop the overlay; run carries the
// chosen action, nil when dismissed.
type paletteClosedMsg struct {
	run tea.Cmd
}

func (p *paletteModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd
	}

	switch keyMsg.Type {
	case tea.KeyEsc:
		return func() tea.Msg { return paletteClosedMsg{} }

	case tea.KeyUp:
		if p.cursor > 0 {
			p.cursor--
		}
		return nil

	case tea.KeyDown:
		if p.cursor < len(p.matches)-1 {
			p.cursor++
		}
		return nil

	case tea.KeyEnter:
		if p.cursor < len(p.matches) {
			entry := p.entries[p.matches[p.cursor]]
			return func() tea.Msg { return paletteClosedMsg{run: entry.action} }
		}
		return func() tea.Msg { return paletteClosedMsg{} }

	default:
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(keyMsg)
		p.refilter()
		return cmd
	}
}

func (p *paletteModel) refilter() {
	filter := strings.ToLower(strings.TrimSpace(p.input.Value()))
	p.matches = p.matches[:0]
	for i, e := range p.entries {
		if filter == "" || strings.Contains(strings.ToLower(e.label), filter) {
			p.matches = append(p.matches, i)
		}
	}
	if p.cursor >= len(p.matches) {
		p.cursor = 0
	}
}

var paletteBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(formatter.ColorHeader).
	PaddingLeft(1).
	PaddingRight(1)

func (p *paletteModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("▸ ") + p.input.View() + "\n\n")

	if len(p.matches) == 0 {
		b.WriteString(formatter.Dim("no matching command"))
	}
	for i, idx := range p.matches {
		label := p.entries[idx].label
		if i == p.cursor {
			b.WriteString(formatter.StyleHeader.Render("› " + label))
		} else {
			b.WriteString("  " + formatter.StyleFg.Render(label))
		}
		if i < len(p.matches)-1 {
			b.WriteString("\n")
		}
	}

	return paletteBoxStyle.Render(b.String())
}
