package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/tr013432-design/spazio/internal/domain"
	"github.com/tr013432-design/spazio/internal/llm"
)

// StudioService exposes the studio's AI-assisted tools. Every method returns
// a caller-visible error when generation fails; the rest of the application
// keeps working without it.
type StudioService interface {
	// AnalyzeBriefing extracts a taste profile from briefing notes. When the
	// model replies with unparseable output the analysis falls back to a
	// deterministic keyword scan instead of failing.
	AnalyzeBriefing(ctx context.Context, notes string) (*BriefingAnalysis, error)

	// FollowUpMessage drafts a check-in message for a lead at a given stage.
	FollowUpMessage(ctx context.Context, leadName string, stage domain.LeadStage) (string, error)

	// ProposalDraft writes a commercial proposal from the lead's notes.
	// A zero budget means no budget hint is included.
	ProposalDraft(ctx context.Context, leadName, notes string, budget int64) (string, error)

	// AnswerRegulatory answers a building-code question for a project context.
	AnswerRegulatory(ctx context.Context, projectContext, question string) (*RegulatoryAnswer, error)

	// Moodboard generates a single moodboard image for a prompt.
	Moodboard(ctx context.Context, prompt string) (*llm.ImageResponse, error)

	// Enabled reports whether the underlying client has an API key.
	Enabled() bool
}

type studioService struct {
	client llm.Client
}

// NewStudioService creates a StudioService backed by a generation client.
func NewStudioService(client llm.Client) StudioService {
	return &studioService{client: client}
}

func (s *studioService) Enabled() bool {
	return s.client.Enabled()
}

func (s *studioService) AnalyzeBriefing(ctx context.Context, notes string) (*BriefingAnalysis, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskBriefing,
		SystemPrompt: briefingSystemPrompt,
		UserPrompt:   "Briefing notes:\n\n" + notes,
	})
	if err != nil {
		return nil, fmt.Errorf("analyzing briefing: %w", err)
	}

	analysis, err := llm.ExtractJSON[BriefingAnalysis](resp.Text, func(a BriefingAnalysis) error {
		if len(a.Styles) == 0 || a.ProfileSummary == "" {
			return fmt.Errorf("incomplete analysis")
		}
		return nil
	})
	if err != nil {
		fallback := DeterministicBriefing(notes)
		return fallback, nil
	}
	return &analysis, nil
}

func (s *studioService) FollowUpMessage(ctx context.Context, leadName string, stage domain.LeadStage) (string, error) {
	prompt := fmt.Sprintf("Client name: %s\nCurrent stage: %s\nWrite the follow-up now.",
		leadName, stageDescription(stage))

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskFollowUp,
		SystemPrompt: followUpSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return "", fmt.Errorf("drafting follow-up for %s: %w", leadName, err)
	}
	return strings.TrimSpace(resp.Text), nil
}

func (s *studioService) ProposalDraft(ctx context.Context, leadName, notes string, budget int64) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Client: %s\n", leadName)
	if notes != "" {
		fmt.Fprintf(&b, "Briefing notes:\n%s\n", notes)
	}
	if budget > 0 {
		fmt.Fprintf(&b, "Budget hint: %.2f\n", float64(budget)/100)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskProposal,
		SystemPrompt: proposalSystemPrompt,
		UserPrompt:   b.String(),
	})
	if err != nil {
		return "", fmt.Errorf("drafting proposal for %s: %w", leadName, err)
	}
	return strings.TrimSpace(resp.Text), nil
}

func (s *studioService) AnswerRegulatory(ctx context.Context, projectContext, question string) (*RegulatoryAnswer, error) {
	prompt := fmt.Sprintf("Project context:\n%s\n\nQuestion: %s", projectContext, question)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskNorms,
		SystemPrompt: normsSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("answering regulatory question: %w", err)
	}

	answer, err := llm.ExtractJSON[RegulatoryAnswer](resp.Text, func(a RegulatoryAnswer) error {
		if a.Answer == "" {
			return fmt.Errorf("empty answer")
		}
		return nil
	})
	if err != nil {
		// Plain-prose replies are still useful for a Q&A feature.
		text := strings.TrimSpace(resp.Text)
		if text == "" {
			return nil, err
		}
		return &RegulatoryAnswer{Answer: text}, nil
	}
	return &answer, nil
}

func (s *studioService) Moodboard(ctx context.Context, prompt string) (*llm.ImageResponse, error) {
	img, err := s.client.GenerateImage(ctx, moodboardPromptPrefix+prompt)
	if err != nil {
		return nil, fmt.Errorf("generating moodboard: %w", err)
	}
	return img, nil
}

func stageDescription(stage domain.LeadStage) string {
	switch stage {
	case domain.LeadProspection:
		return "first contact, no meeting yet"
	case domain.LeadTechnicalVisit:
		return "a technical site visit has been scheduled or done"
	case domain.LeadBriefing:
		return "the briefing conversation is underway"
	case domain.LeadConcept:
		return "a concept proposal has been presented"
	case domain.LeadSigned:
		return "the contract has been signed"
	default:
		return string(stage)
	}
}
