package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tr013432-design/spazio/internal/cli/formatter"
	"github.com/tr013432-design/spazio/internal/domain"
)

// projectsLoadedMsg carries the project portfolio after a reload.
type projectsLoadedMsg struct {
	projects []*domain.Project
	err      error
}

// projectActionMsg reports the outcome of a mutation from the list.
type projectActionMsg struct {
	toast string
	err   error
}

// projectListView is a cursor list over the portfolio with inline
// stage, billing and RRT actions.
type projectListView struct {
	state    *SharedState
	projects []*domain.Project
	cursor   int
	loading  bool
	err      error
}

func newProjectListView(state *SharedState) *projectListView {
	return &projectListView{state: state, loading: true}
}

func (v *projectListView) ID() ViewID    { return ViewProjectList }
func (v *projectListView) Title() string { return "Projects" }

func (v *projectListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys("]"), key.WithHelp("]/[", "move stage")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "charge milestone")),
		key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "issue rrt")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *projectListView) Init() tea.Cmd {
	return v.loadProjects()
}

func (v *projectListView) loadProjects() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		projects, err := app.Projects.List(context.Background())
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

func (v *projectListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.projects = msg.projects
		if v.cursor >= len(v.projects) {
			v.cursor = len(v.projects) - 1
		}
		if v.cursor < 0 {
			v.cursor = 0
		}
		return v, nil

	case projectActionMsg:
		if msg.err != nil {
			return v, showToast(formatter.StyleRed.Render(msg.err.Error()))
		}
		cmds := []tea.Cmd{v.loadProjects()}
		if msg.toast != "" {
			cmds = append(cmds, showToast(msg.toast))
		}
		return v, tea.Batch(cmds...)

	case refreshViewMsg:
		v.loading = true
		return v, v.loadProjects()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.projects)-1 {
				v.cursor++
			}
		case "]":
			return v, v.moveStage(1)
		case "[":
			return v, v.moveStage(-1)
		case "c":
			return v, v.chargeMilestone()
		case "i":
			return v, v.issueRRT()
		case "r":
			v.loading = true
			return v, v.loadProjects()
		}
	}
	return v, nil
}

func (v *projectListView) selected() *domain.Project {
	if len(v.projects) == 0 || v.cursor >= len(v.projects) {
		return nil
	}
	return v.projects[v.cursor]
}

func (v *projectListView) moveStage(delta int) tea.Cmd {
	p := v.selected()
	if p == nil {
		return nil
	}
	stages := domain.ProjectStages()
	idx := domain.ProjectStageIndex(p.Stage) + delta
	if idx < 0 || idx >= len(stages) {
		return nil
	}
	target := stages[idx]
	app := v.state.App
	return func() tea.Msg {
		if err := app.Projects.SetStage(context.Background(), p.ID, target); err != nil {
			return projectActionMsg{err: err}
		}
		return projectActionMsg{toast: fmt.Sprintf("%s → %s", p.Title, formatter.ProjectStageLabel(target))}
	}
}

func (v *projectListView) chargeMilestone() tea.Cmd {
	p := v.selected()
	if p == nil {
		return nil
	}
	app := v.state.App
	return func() tea.Msg {
		charged, err := app.Projects.ChargeMilestone(context.Background(), p.ID)
		if err != nil {
			return projectActionMsg{err: err}
		}
		return projectActionMsg{toast: fmt.Sprintf("Charged %s on %s", formatter.FormatMoney(charged), p.Title)}
	}
}

func (v *projectListView) issueRRT() tea.Cmd {
	p := v.selected()
	if p == nil {
		return nil
	}
	app := v.state.App
	return func() tea.Msg {
		number, err := app.Projects.IssueRRT(context.Background(), p.ID)
		if err != nil {
			return projectActionMsg{err: err}
		}
		return projectActionMsg{toast: fmt.Sprintf("RRT %s issued for %s", number, p.Title)}
	}
}

func (v *projectListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading projects...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if len(v.projects) == 0 {
		return "\n  " + formatter.Dim("No projects yet. Convert a signed lead to start one.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, p := range v.projects {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		line := fmt.Sprintf("%s%s %s  %s %s  %s / %s  %s",
			cursor,
			formatter.TruncID(p.ID),
			formatter.Bold(formatter.PadRight(p.Title, 24)),
			formatter.ShortStepper(p.Stage),
			formatter.RenderProgress(p.Progress, 8),
			formatter.FormatMoney(p.PaidValue),
			formatter.FormatMoney(p.TotalValue),
			formatter.RRTBadge(p.RRTStatus, p.RRTNumber),
		)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
