package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// replaceViewMsg replaces the current top view with a new one.
type replaceViewMsg struct {
	view View
}

// refreshViewMsg asks every view on the stack to reload its data after a
// mutation.
type refreshViewMsg struct{}

// toastMsg shows a transient message on the toast line.
type toastMsg struct {
	text string
}

// toastClearMsg dismisses the toast once the matching timer fires. Seq
// guards against an old timer clearing a newer toast.
type toastClearMsg struct {
	seq int
}

const toastDuration = 3 * time.Second

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// replaceView returns a tea.Cmd that replaces the top view.
func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

// showToast returns a tea.Cmd that displays a transient toast message.
func showToast(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{text: text} }
}

// refreshViews returns a tea.Cmd that broadcasts a data reload.
func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}
