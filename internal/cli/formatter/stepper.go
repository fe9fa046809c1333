package formatter

import (
	"strings"

	"github.com/tr013432-design/spazio/internal/domain"
)

// RenderStepper renders the lifecycle stepper on one line, every stage shown
// in order:
//
//	✔ Briefing ── ✔ Concept ── ● Executive ── ○ Construction ── ○ Completed
//
// Completed stages are green, the current stage bold, locked stages dimmed.
func RenderStepper(current domain.ProjectStage) string {
	stages := domain.ProjectStages()
	states := domain.ProjectStepper(current)

	parts := make([]string, 0, len(stages))
	for i, stage := range stages {
		label := ProjectStageLabel(stage)
		switch states[i] {
		case domain.StepCompleted:
			parts = append(parts, StyleGreen.Render("✔ "+label))
		case domain.StepCurrent:
			parts = append(parts, StyleHeader.Render("● "+label))
		default:
			parts = append(parts, StyleDim.Render("○ "+label))
		}
	}

	return strings.Join(parts, StyleDim.Render(" ── "))
}

// ShortStepper renders a compact dot stepper such as "●●●○○" for list rows.
func ShortStepper(current domain.ProjectStage) string {
	states := domain.ProjectStepper(current)

	var b strings.Builder
	for _, st := range states {
		switch st {
		case domain.StepCompleted:
			b.WriteString(StyleGreen.Render("●"))
		case domain.StepCurrent:
			b.WriteString(StyleHeader.Render("●"))
		default:
			b.WriteString(StyleDim.Render("○"))
		}
	}
	return b.String()
}
