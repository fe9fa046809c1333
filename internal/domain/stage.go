package domain

// The pipeline and lifecycle orders are fixed at compile time. Steppers render
// every stage; the transition engine still allows arbitrary jumps between them.

var leadStageOrder = []LeadStage{
	LeadProspection,
	LeadTechnicalVisit,
	LeadBriefing,
	LeadConcept,
	LeadSigned,
}

var projectStageOrder = []ProjectStage{
	StageBriefing,
	StageConcept,
	StageExecutive,
	StageConstruction,
	StageCompleted,
}

// LeadStages returns the ordered pipeline stages. LeadLost is excluded: it is
// the absorbing state outside the visible order.
func LeadStages() []LeadStage {
	out := make([]LeadStage, len(leadStageOrder))
	copy(out, leadStageOrder)
	return out
}

// ProjectStages returns the ordered project lifecycle stages.
func ProjectStages() []ProjectStage {
	out := make([]ProjectStage, len(projectStageOrder))
	copy(out, projectStageOrder)
	return out
}

// LeadStageIndex returns the position of s in the pipeline order, or -1 for
// unknown stages and for LeadLost.
func LeadStageIndex(s LeadStage) int {
	for i, stage := range leadStageOrder {
		if stage == s {
			return i
		}
	}
	return -1
}

// ProjectStageIndex returns the position of s in the lifecycle order, or -1
// for unknown stages.
func ProjectStageIndex(s ProjectStage) int {
	for i, stage := range projectStageOrder {
		if stage == s {
			return i
		}
	}
	return -1
}

// IsTerminal reports whether s ends the lead's active lifecycle.
func IsTerminal(s LeadStage) bool {
	return s == LeadLost
}

// ValidLeadStage accepts any pipeline stage plus the Lost absorbing state.
func ValidLeadStage(s LeadStage) bool {
	return LeadStageIndex(s) >= 0 || s == LeadLost
}

func ValidProjectStage(s ProjectStage) bool {
	return ProjectStageIndex(s) >= 0
}

// StepState describes how a stepper renders one stage relative to the current one.
type StepState int

const (
	StepCompleted StepState = iota
	StepCurrent
	StepLocked
)

// ProjectStepper returns the render state for every lifecycle stage given the
// project's current stage, in lifecycle order.
func ProjectStepper(current ProjectStage) []StepState {
	cur := ProjectStageIndex(current)
	states := make([]StepState, len(projectStageOrder))
	for i := range projectStageOrder {
		switch {
		case i < cur:
			states[i] = StepCompleted
		case i == cur:
			states[i] = StepCurrent
		default:
			states[i] = StepLocked
		}
	}
	return states
}
