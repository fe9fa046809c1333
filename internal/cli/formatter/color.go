package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tr013432-design/spazio/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TemperatureBadge returns a colored indicator for a lead's temperature.
func TemperatureBadge(t domain.LeadTemperature) string {
	switch t {
	case domain.TempHot:
		return StyleRed.Render("● hot")
	case domain.TempCold:
		return StyleBlue.Render("● cold")
	default:
		return StyleYellow.Render("● warm")
	}
}

// LeadStageLabel returns a human label for a pipeline stage.
func LeadStageLabel(s domain.LeadStage) string {
	switch s {
	case domain.LeadProspection:
		return "Prospection"
	case domain.LeadTechnicalVisit:
		return "Technical Visit"
	case domain.LeadBriefing:
		return "Briefing"
	case domain.LeadConcept:
		return "Concept"
	case domain.LeadSigned:
		return "Signed"
	case domain.LeadLost:
		return "Lost"
	default:
		return string(s)
	}
}

// ProjectStageLabel returns a human label for a lifecycle stage.
func ProjectStageLabel(s domain.ProjectStage) string {
	switch s {
	case domain.StageBriefing:
		return "Briefing"
	case domain.StageConcept:
		return "Concept"
	case domain.StageExecutive:
		return "Executive"
	case domain.StageConstruction:
		return "Construction"
	case domain.StageCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// LossReasonLabel returns a human label for a loss reason.
func LossReasonLabel(r domain.LossReason) string {
	switch r {
	case domain.LossPriceTooHigh:
		return "Price too high"
	case domain.LossCompetitor:
		return "Chose a competitor"
	case domain.LossWithdrawn:
		return "Client withdrew"
	case domain.LossNoContact:
		return "No contact"
	default:
		return string(r)
	}
}

// RRTBadge returns a colored indicator for the permit status, with the
// registry number when one has been issued.
func RRTBadge(status domain.RRTStatus, number string) string {
	switch status {
	case domain.RRTPaid:
		return StyleGreen.Render("✔ RRT " + number)
	case domain.RRTIssued:
		return StyleYellow.Render("● RRT " + number)
	default:
		return StyleDim.Render("○ RRT pending")
	}
}

// MaterialPill returns a colored indicator for a material approval status.
func MaterialPill(status domain.MaterialStatus) string {
	switch status {
	case domain.MaterialApproved:
		return StyleGreen.Render("✔ approved")
	case domain.MaterialRejected:
		return StyleRed.Render("✖ rejected")
	default:
		return StyleYellow.Render("○ pending")
	}
}

// TxnPill returns a signed, colored amount for a ledger entry.
func TxnPill(t *domain.Transaction) string {
	if t.Type == domain.TxnIncome {
		return StyleGreen.Render("+" + FormatMoney(t.Amount))
	}
	return StyleRed.Render("-" + FormatMoney(t.Amount))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
