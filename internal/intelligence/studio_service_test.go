package intelligence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tr013432-design/spazio/internal/domain"
	"github.com/tr013432-design/spazio/internal/llm"
)

func newFakeAI(t *testing.T, handler http.HandlerFunc) StudioService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := llm.DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = srv.URL
	cfg.MaxRetries = 0
	return NewStudioService(llm.NewGeminiClient(cfg, nil))
}

func replyWith(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}
}

func TestAnalyzeBriefing_StructuredReply(t *testing.T) {
	svc := newFakeAI(t, replyWith(`{"styles":["japandi","minimalist"],"materials":["oak","linen"],"profileSummary":"Calm couple, loves light wood."}`))

	analysis, err := svc.AnalyzeBriefing(context.Background(), "they want a calm home")
	require.NoError(t, err)
	assert.False(t, analysis.Fallback)
	assert.Equal(t, []string{"japandi", "minimalist"}, analysis.Styles)
	assert.Contains(t, analysis.ProfileSummary, "Calm couple")
}

func TestAnalyzeBriefing_UnparseableFallsBack(t *testing.T) {
	svc := newFakeAI(t, replyWith("I think they like wood and concrete but I cannot produce JSON"))

	analysis, err := svc.AnalyzeBriefing(context.Background(), "minimal apartment, lots of wood and concrete")
	require.NoError(t, err)
	assert.True(t, analysis.Fallback)
	assert.Contains(t, analysis.Styles, "minimalist")
	assert.Contains(t, analysis.Materials, "natural wood")
	assert.Contains(t, analysis.Materials, "exposed concrete")
	assert.NotEmpty(t, analysis.ProfileSummary)
}

func TestAnalyzeBriefing_ServerDownIsAnError(t *testing.T) {
	svc := newFakeAI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := svc.AnalyzeBriefing(context.Background(), "notes")
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrRetryExhausted)
}

func TestFollowUpMessage(t *testing.T) {
	var gotPrompt string
	svc := newFakeAI(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		gotPrompt = req.Contents[0].Parts[0].Text
		replyWith("Gentile Marta, how did the visit go?")(w, r)
	})

	msg, err := svc.FollowUpMessage(context.Background(), "Marta", domain.LeadTechnicalVisit)
	require.NoError(t, err)
	assert.Equal(t, "Gentile Marta, how did the visit go?", msg)
	assert.Contains(t, gotPrompt, "Marta")
	assert.Contains(t, gotPrompt, "site visit")
}

func TestProposalDraft_IncludesBudgetHint(t *testing.T) {
	var gotPrompt string
	svc := newFakeAI(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		gotPrompt = req.Contents[0].Parts[0].Text
		replyWith("Proposal draft ...")(w, r)
	})

	_, err := svc.ProposalDraft(context.Background(), "Marta", "penthouse refit", 150_000_00)
	require.NoError(t, err)
	assert.Contains(t, gotPrompt, "penthouse refit")
	assert.Contains(t, gotPrompt, "150000.00")
}

func TestAnswerRegulatory(t *testing.T) {
	svc := newFakeAI(t, replyWith(`{"answer":"Minimum setback is 5 meters.","references":["DM 1444/68 art. 9"]}`))

	ans, err := svc.AnswerRegulatory(context.Background(), "residential, zone B", "what is the setback?")
	require.NoError(t, err)
	assert.Equal(t, "Minimum setback is 5 meters.", ans.Answer)
	assert.Equal(t, []string{"DM 1444/68 art. 9"}, ans.References)
}

func TestAnswerRegulatory_ProseReplyStillUsable(t *testing.T) {
	svc := newFakeAI(t, replyWith("The setback depends on the zoning plan; typically 5 meters."))

	ans, err := svc.AnswerRegulatory(context.Background(), "zone B", "setback?")
	require.NoError(t, err)
	assert.Contains(t, ans.Answer, "setback")
	assert.Empty(t, ans.References)
}

func TestStudioService_Disabled(t *testing.T) {
	svc := NewStudioService(llm.NewGeminiClient(llm.DefaultConfig(), nil))

	assert.False(t, svc.Enabled())
	_, err := svc.AnalyzeBriefing(context.Background(), "notes")
	assert.ErrorIs(t, err, llm.ErrDisabled)
	_, err = svc.FollowUpMessage(context.Background(), "Marta", domain.LeadBriefing)
	assert.ErrorIs(t, err, llm.ErrDisabled)
	_, err = svc.Moodboard(context.Background(), "japandi loft")
	assert.ErrorIs(t, err, llm.ErrDisabled)
}

func TestDeterministicBriefing_Defaults(t *testing.T) {
	analysis := DeterministicBriefing("no recognizable keywords here")
	assert.True(t, analysis.Fallback)
	assert.Equal(t, []string{"contemporary"}, analysis.Styles)
	assert.NotEmpty(t, analysis.Materials)
}
