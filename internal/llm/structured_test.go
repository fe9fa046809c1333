package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type briefingPayload struct {
	Styles         []string `json:"styles"`
	Materials      []string `json:"materials"`
	ProfileSummary string   `json:"profileSummary"`
	Score          float64  `json:"score"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	raw := `{"styles":["japandi"],"materials":["oak"],"profileSummary":"calm minimalist","score":0.9}`
	result, err := ExtractJSON[briefingPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"japandi"}, result.Styles)
	assert.Equal(t, 0.9, result.Score)
}

func TestExtractJSON_FencedWithProse(t *testing.T) {
	raw := "Here is the analysis you asked for:\n```json\n{\"styles\":[\"brutalist\"],\"materials\":[\"concrete\"],\"profileSummary\":\"bold\",\"score\":0.7}\n```\nLet me know if you need more."
	result, err := ExtractJSON[briefingPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "bold", result.ProfileSummary)
}

func TestExtractJSON_CommentsAndLeadingDecimal(t *testing.T) {
	raw := `{
		"styles": ["mediterranean"], // client said "sunny"
		"materials": ["terracotta"],
		"profileSummary": "warm",
		"score": .85
	}`
	result, err := ExtractJSON[briefingPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.85, result.Score)
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	type nested struct {
		Answer string            `json:"answer"`
		Refs   map[string]string `json:"refs"`
	}
	raw := `{"answer":"setback is 5m","refs":{"code":"DM 1444/68"}}`
	result, err := ExtractJSON[nested](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "DM 1444/68", result.Refs["code"])
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[briefingPayload]("sorry, I cannot help with that", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	raw := `{"styles":[],"materials":[],"profileSummary":"","score":0}`
	_, err := ExtractJSON[briefingPayload](raw, func(p briefingPayload) error {
		if len(p.Styles) == 0 {
			return fmt.Errorf("styles missing")
		}
		return nil
	})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}
