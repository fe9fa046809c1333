package service

import (
	"context"
	"time"

	"github.com/tr013432-design/spazio/internal/domain"
	"github.com/tr013432-design/spazio/internal/insights"
)

type LeadService interface {
	Create(ctx context.Context, l *domain.Lead) error
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	ListActive(ctx context.Context) ([]*domain.Lead, error)
	ListLost(ctx context.Context) ([]*domain.Lead, error)
	Update(ctx context.Context, l *domain.Lead) error
	SetStage(ctx context.Context, id string, stage domain.LeadStage) error
	// MarkLost moves the lead to the terminal lost state. The reason is
	// mandatory and must come from the fixed set.
	MarkLost(ctx context.Context, id string, reason domain.LossReason) error
	// ConvertToProject creates a project from a signed lead, atomically.
	ConvertToProject(ctx context.Context, id string) (*domain.Project, error)
	Delete(ctx context.Context, id string) error

	AddTask(ctx context.Context, leadID, description string) (*domain.Task, error)
	SetTaskCompleted(ctx context.Context, taskID string, completed bool) error
	DeleteTask(ctx context.Context, taskID string) error
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	SetStage(ctx context.Context, id string, stage domain.ProjectStage) error
	SetProgress(ctx context.Context, id string, progress int) error
	// IssueRRT assigns a registry number and moves the permit to issued.
	// Issuing twice returns domain.ErrRRTIssued.
	IssueRRT(ctx context.Context, id string) (string, error)
	MarkRRTPaid(ctx context.Context, id string) error
	// ChargeMilestone charges 25% of the contracted value, clamped so the
	// paid total never exceeds it, and records the matching ledger entry.
	// Returns the amount charged in cents.
	ChargeMilestone(ctx context.Context, id string) (int64, error)
	Delete(ctx context.Context, id string) error

	AddDailyLog(ctx context.Context, projectID, content, imageURL string) (*domain.DailyLog, error)
	AddMaterial(ctx context.Context, projectID, name, category, imageURL string) (*domain.MaterialApproval, error)
	// ReviewMaterial settles a pending approval; settled materials stay settled.
	ReviewMaterial(ctx context.Context, materialID string, approved bool) error
}

type FinanceService interface {
	Record(ctx context.Context, t *domain.Transaction) error
	List(ctx context.Context) ([]*domain.Transaction, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Transaction, error)
	Summary(ctx context.Context) (*FinanceSummary, error)
}

// FinanceSummary aggregates the ledger for the finance screen.
type FinanceSummary struct {
	RealizedIncome   int64
	RealizedExpenses int64
	RealizedBalance  int64
	PendingExpenses  int64
	Cashflow         []insights.MonthFlow
}

// StatusSnapshot is the dashboard view of the whole studio.
type StatusSnapshot struct {
	ActiveProjects   int
	NewLeads         int
	RealizedIncome   int64
	PendingExpenses  int64
	Receivable       int64
	LeadDistribution []insights.StageCount
	ProjDistribution []insights.StageCount
	OverdueLeads     []*domain.Lead
	RRTPending       int
	Cashflow         []insights.MonthFlow
	GeneratedAt      time.Time
}

type StatusService interface {
	Snapshot(ctx context.Context, now time.Time) (*StatusSnapshot, error)
}
