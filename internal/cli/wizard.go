package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/tr013432-design/spazio/internal/cli/formatter"
	"github.com/tr013432-design/spazio/internal/domain"
)

// spazioHuhTheme returns a custom huh theme using the existing palette.
func spazioHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// leadFormValues collects the new-lead wizard's raw inputs.
type leadFormValues struct {
	Name        string
	Phone       string
	Budget      string
	Temperature string
	NextAction  string
	Notes       string
}

// Lead converts validated form input into a domain lead.
func (v *leadFormValues) Lead() (*domain.Lead, error) {
	l := &domain.Lead{
		Name:        v.Name,
		Phone:       v.Phone,
		Notes:       v.Notes,
		Temperature: domain.LeadTemperature(v.Temperature),
	}
	if v.Budget != "" {
		cents, err := formatter.ParseMoney(v.Budget)
		if err != nil {
			return nil, err
		}
		l.Budget = cents
	}
	if v.NextAction != "" {
		d, err := time.Parse("2006-01-02", v.NextAction)
		if err != nil {
			return nil, err
		}
		l.NextActionDate = &d
	}
	return l, nil
}

// newLeadForm builds the huh wizard for adding a lead from the board.
func newLeadForm(values *leadFormValues) *huh.Form {
	values.Temperature = string(domain.TempWarm)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Client name").
				Value(&values.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Phone").
				Placeholder("11 99999-0000").
				Value(&values.Phone),
			huh.NewInput().
				Title("Budget").
				Placeholder("150000").
				Value(&values.Budget).
				Validate(validateOptionalMoney),
			huh.NewSelect[string]().
				Title("Temperature").
				Options(
					huh.NewOption("Hot", string(domain.TempHot)),
					huh.NewOption("Warm", string(domain.TempWarm)),
					huh.NewOption("Cold", string(domain.TempCold)),
				).
				Value(&values.Temperature),
			huh.NewInput().
				Title("Next action (YYYY-MM-DD, blank for none)").
				Value(&values.NextAction).
				Validate(validateOptionalDate),
			huh.NewText().
				Title("Briefing notes").
				Value(&values.Notes),
		),
	).WithTheme(spazioHuhTheme()).WithShowHelp(false)
}

// validateOptionalMoney accepts empty or a parseable money amount.
func validateOptionalMoney(s string) error {
	if s == "" {
		return nil
	}
	if _, err := formatter.ParseMoney(s); err != nil {
		return fmt.Errorf("enter an amount like 1500 or 1500,00")
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}
