package intelligence

import "strings"

type keywordHint struct {
	needle string
	value  string
}

// ordered so repeated scans of the same notes agree
var styleHints = []keywordHint{
	{"minimal", "minimalist"},
	{"essenzial", "minimalist"},
	{"scandinav", "scandinavian"},
	{"japandi", "japandi"},
	{"industrial", "industrial"},
	{"rustic", "rustic country"},
	{"classic", "classic contemporary"},
	{"mediterranean", "mediterranean"},
	{"brutalist", "brutalist"},
}

var materialHints = []keywordHint{
	{"wood", "natural wood"},
	{"legno", "natural wood"},
	{"oak", "oak"},
	{"concrete", "exposed concrete"},
	{"cemento", "exposed concrete"},
	{"marble", "marble"},
	{"marmo", "marble"},
	{"steel", "blackened steel"},
	{"linen", "linen textiles"},
	{"stone", "natural stone"},
	{"terracot", "terracotta"},
}

// DeterministicBriefing derives a coarse taste profile from the notes by
// keyword matching. Used when the model's structured output cannot be parsed
// so the feature degrades instead of erroring.
func DeterministicBriefing(notes string) *BriefingAnalysis {
	lower := strings.ToLower(notes)

	analysis := &BriefingAnalysis{Fallback: true}
	for _, h := range styleHints {
		if strings.Contains(lower, h.needle) {
			analysis.Styles = appendUnique(analysis.Styles, h.value)
		}
	}
	for _, h := range materialHints {
		if strings.Contains(lower, h.needle) {
			analysis.Materials = appendUnique(analysis.Materials, h.value)
		}
	}

	if len(analysis.Styles) == 0 {
		analysis.Styles = []string{"contemporary"}
	}
	if len(analysis.Materials) == 0 {
		analysis.Materials = []string{"natural wood", "stone"}
	}
	analysis.ProfileSummary = "Automatic summary from briefing keywords. " +
		"Likely directions: " + strings.Join(analysis.Styles, ", ") + "."
	return analysis
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
