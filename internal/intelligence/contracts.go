package intelligence

// BriefingAnalysis is the structured reading of a client briefing.
type BriefingAnalysis struct {
	Styles         []string `json:"styles"`
	Materials      []string `json:"materials"`
	ProfileSummary string   `json:"profileSummary"`

	// Fallback marks an analysis produced without the model, when its
	// output could not be parsed.
	Fallback bool `json:"-"`
}

// RegulatoryAnswer is a grounded reply to a building-code question.
type RegulatoryAnswer struct {
	Answer     string   `json:"answer"`
	References []string `json:"references"`
}
