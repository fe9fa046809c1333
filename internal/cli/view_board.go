package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/tr013432-design/spazio/internal/cli/formatter"
	"github.com/tr013432-design/spazio/internal/domain"
	"github.com/tr013432-design/spazio/internal/insights"
)

// boardLoadedMsg carries the active pipeline after a reload.
type boardLoadedMsg struct {
	leads []*domain.Lead
	err   error
}

// boardActionMsg reports the outcome of a mutation triggered from the board.
type boardActionMsg struct {
	toast string
	err   error
}

// lossModal is the confirmation overlay for marking a lead lost. The
// confirm key only works after a reason has been chosen; esc abandons
// the whole flow without touching the lead.
type lossModal struct {
	lead   *domain.Lead
	cursor int
	chosen int // index into domain.LossReasons, -1 until enter
}

// boardView is the kanban pipeline: one column per stage, lost leads
// excluded. This is the landing view of the interactive mode.
type boardView struct {
	state   *SharedState
	columns [][]*domain.Lead
	selCol  int
	selCard int
	loading bool
	err     error

	modal      *lossModal
	form       *huh.Form
	formValues *leadFormValues
}

func newBoardView(state *SharedState) *boardView {
	return &boardView{
		state:   state,
		columns: make([][]*domain.Lead, len(domain.LeadStages())),
		loading: true,
	}
}

func (v *boardView) ID() ViewID    { return ViewBoard }
func (v *boardView) Title() string { return "Pipeline" }

func (v *boardView) CapturesInput() bool {
	return v.modal != nil || v.form != nil
}

func (v *boardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "column")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "card")),
		key.NewBinding(key.WithKeys("]"), key.WithHelp("]/[", "move stage")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "new lead")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "mark lost")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "convert")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "projects")),
	}
}

func (v *boardView) Init() tea.Cmd {
	return v.loadLeads()
}

func (v *boardView) loadLeads() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		leads, err := app.Leads.ListActive(context.Background())
		return boardLoadedMsg{leads: leads, err: err}
	}
}

func (v *boardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.setLeads(msg.leads)
		return v, nil

	case boardActionMsg:
		if msg.err != nil {
			return v, showToast(formatter.StyleRed.Render(msg.err.Error()))
		}
		cmds := []tea.Cmd{v.loadLeads()}
		if msg.toast != "" {
			cmds = append(cmds, showToast(msg.toast))
		}
		return v, tea.Batch(cmds...)

	case refreshViewMsg:
		v.loading = true
		return v, v.loadLeads()

	case tea.KeyMsg:
		if v.modal != nil {
			return v.updateModal(msg)
		}
		if v.form != nil {
			return v.updateForm(msg)
		}
		return v.updateBoard(msg)
	}

	if v.form != nil {
		return v.updateForm(msg)
	}
	return v, nil
}

func (v *boardView) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if v.selCol > 0 {
			v.selCol--
			v.clampCard()
		}
	case "right", "l":
		if v.selCol < len(v.columns)-1 {
			v.selCol++
			v.clampCard()
		}
	case "up", "k":
		if v.selCard > 0 {
			v.selCard--
		}
	case "down", "j":
		if v.selCard < len(v.columns[v.selCol])-1 {
			v.selCard++
		}
	case "]":
		return v, v.moveStage(1)
	case "[":
		return v, v.moveStage(-1)
	case "a":
		v.formValues = &leadFormValues{}
		v.form = newLeadForm(v.formValues)
		return v, v.form.Init()
	case "x":
		if lead := v.selected(); lead != nil {
			v.modal = &lossModal{lead: lead, chosen: -1}
		}
	case "c":
		return v, v.convertSelected()
	case "p":
		return v, pushView(newProjectListView(v.state))
	case "r":
		v.loading = true
		return v, v.loadLeads()
	}
	return v, nil
}

func (v *boardView) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m := v.modal
	switch msg.String() {
	case "esc":
		v.modal = nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(domain.LossReasons)-1 {
			m.cursor++
		}
	case "enter":
		m.chosen = m.cursor
	case "y":
		if m.chosen < 0 {
			return v, nil
		}
		lead := m.lead
		reason := domain.LossReasons[m.chosen]
		v.modal = nil
		app := v.state.App
		return v, func() tea.Msg {
			if err := app.Leads.MarkLost(context.Background(), lead.ID, reason); err != nil {
				return boardActionMsg{err: err}
			}
			return boardActionMsg{toast: fmt.Sprintf("%s marked lost (%s)", lead.Name, formatter.LossReasonLabel(reason))}
		}
	}
	return v, nil
}

func (v *boardView) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		v.form = nil
		v.formValues = nil
		return v, nil
	}

	model, cmd := v.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		values := v.formValues
		v.form = nil
		v.formValues = nil
		app := v.state.App
		return v, func() tea.Msg {
			lead, err := values.Lead()
			if err != nil {
				return boardActionMsg{err: err}
			}
			if err := app.Leads.Create(context.Background(), lead); err != nil {
				return boardActionMsg{err: err}
			}
			return boardActionMsg{toast: fmt.Sprintf("Lead %s added", lead.Name)}
		}
	}
	if v.form.State == huh.StateAborted {
		v.form = nil
		v.formValues = nil
		return v, nil
	}
	return v, cmd
}

// moveStage shifts the selected lead one pipeline column in the given
// direction. Past either end it is a no-op.
func (v *boardView) moveStage(delta int) tea.Cmd {
	lead := v.selected()
	if lead == nil {
		return nil
	}
	stages := domain.LeadStages()
	idx := domain.LeadStageIndex(lead.Stage) + delta
	if idx < 0 || idx >= len(stages) {
		return nil
	}
	target := stages[idx]
	app := v.state.App
	return func() tea.Msg {
		if err := app.Leads.SetStage(context.Background(), lead.ID, target); err != nil {
			return boardActionMsg{err: err}
		}
		return boardActionMsg{toast: fmt.Sprintf("%s → %s", lead.Name, formatter.LeadStageLabel(target))}
	}
}

func (v *boardView) convertSelected() tea.Cmd {
	lead := v.selected()
	if lead == nil {
		return nil
	}
	if lead.Stage != domain.LeadSigned {
		return showToast(formatter.StyleYellow.Render("only signed leads convert to projects"))
	}
	app := v.state.App
	return func() tea.Msg {
		project, err := app.Leads.ConvertToProject(context.Background(), lead.ID)
		if err != nil {
			return boardActionMsg{err: err}
		}
		return boardActionMsg{toast: fmt.Sprintf("Project %s created from %s", project.DisplayID(), lead.Name)}
	}
}

func (v *boardView) setLeads(leads []*domain.Lead) {
	columns := make([][]*domain.Lead, len(domain.LeadStages()))
	for _, l := range leads {
		idx := domain.LeadStageIndex(l.Stage)
		if idx < 0 {
			continue
		}
		columns[idx] = append(columns[idx], l)
	}
	v.columns = columns
	v.clampCard()
}

func (v *boardView) clampCard() {
	if n := len(v.columns[v.selCol]); v.selCard >= n {
		v.selCard = n - 1
	}
	if v.selCard < 0 {
		v.selCard = 0
	}
}

func (v *boardView) selected() *domain.Lead {
	col := v.columns[v.selCol]
	if len(col) == 0 || v.selCard >= len(col) {
		return nil
	}
	return col[v.selCard]
}

func (v *boardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading pipeline...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.form != nil {
		return "\n" + formatter.RenderBox("New lead", v.form.View())
	}

	now := time.Now()
	stages := domain.LeadStages()
	columns := make([]formatter.BoardColumn, len(stages))
	for i, stage := range stages {
		col := formatter.BoardColumn{Title: formatter.LeadStageLabel(stage)}
		for _, l := range v.columns[i] {
			budget := ""
			if l.Budget > 0 {
				budget = formatter.FormatMoney(l.Budget)
			}
			col.Cards = append(col.Cards, formatter.BoardCard{
				Title:    l.Name,
				Budget:   budget,
				Temp:     formatter.TemperatureBadge(l.Temperature),
				Overdue:  insights.IsOverdue(l.NextActionDate, now),
				OpenTask: l.OpenTasks(),
			})
		}
		columns[i] = col
	}

	board := formatter.RenderBoard(columns, v.selCol, v.selCard)
	if v.modal == nil {
		return "\n" + board
	}
	return "\n" + board + "\n" + v.renderModal()
}

func (v *boardView) renderModal() string {
	m := v.modal
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Mark %s as lost?\n\n", formatter.Bold(m.lead.Name)))
	for i, reason := range domain.LossReasons {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("› ")
		}
		label := formatter.LossReasonLabel(reason)
		if i == m.chosen {
			label = formatter.StyleGreen.Render("● " + label)
		}
		b.WriteString(cursor + label + "\n")
	}
	b.WriteString("\n")
	if m.chosen >= 0 {
		b.WriteString(formatter.Dim("y confirm · esc cancel"))
	} else {
		b.WriteString(formatter.Dim("enter choose reason · esc cancel"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(formatter.ColorRed).
		Padding(0, 2).
		Render(b.String())
}
