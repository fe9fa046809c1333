package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tr013432-design/spazio/internal/domain"
)

func TestRenderStepper_MidLifecycle(t *testing.T) {
	out := stripANSI(RenderStepper(domain.StageExecutive))

	assert.Contains(t, out, "✔ Briefing")
	assert.Contains(t, out, "✔ Concept")
	assert.Contains(t, out, "● Executive")
	assert.Contains(t, out, "○ Construction")
	assert.Contains(t, out, "○ Completed")
}

func TestRenderStepper_JumpToConstruction(t *testing.T) {
	// A direct jump marks everything before Construction completed and
	// leaves only Completed locked.
	out := stripANSI(RenderStepper(domain.StageConstruction))

	assert.Contains(t, out, "✔ Executive")
	assert.Contains(t, out, "● Construction")
	assert.Contains(t, out, "○ Completed")
	assert.NotContains(t, out, "○ Executive")
}

func TestShortStepper_ShowsEveryStage(t *testing.T) {
	out := stripANSI(ShortStepper(domain.StageBriefing))
	assert.Equal(t, len(domain.ProjectStages()), len([]rune(out)))
	assert.Equal(t, "●○○○○", out)
}

// stripANSI removes escape sequences so assertions can match plain text.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
