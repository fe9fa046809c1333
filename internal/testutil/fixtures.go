package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/tr013432-design/spazio/internal/domain"
)

// Lead options
type LeadOption func(*domain.Lead)

func WithLeadStage(s domain.LeadStage) LeadOption {
	return func(l *domain.Lead) {
		l.Stage = s
	}
}

func WithTemperature(t domain.LeadTemperature) LeadOption {
	return func(l *domain.Lead) {
		l.Temperature = t
	}
}

func WithNextAction(d time.Time) LeadOption {
	return func(l *domain.Lead) {
		l.NextActionDate = &d
	}
}

func WithBudget(cents int64) LeadOption {
	return func(l *domain.Lead) {
		l.Budget = cents
	}
}

func WithTasks(titles ...string) LeadOption {
	return func(l *domain.Lead) {
		for _, title := range titles {
			l.Tasks = append(l.Tasks, domain.Task{
				ID:          uuid.New().String(),
				LeadID:      l.ID,
				Description: title,
			})
		}
	}
}

func NewTestLead(name string, opts ...LeadOption) *domain.Lead {
	now := time.Now().UTC()
	l := &domain.Lead{
		ID:          uuid.New().String(),
		Name:        name,
		Email:       "test@example.com",
		Phone:       "+39 333 000 0000",
		Source:      "referral",
		Budget:      15_000_00,
		Stage:       domain.LeadProspection,
		Temperature: domain.TempWarm,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStage(s domain.ProjectStage) ProjectOption {
	return func(p *domain.Project) {
		p.Stage = s
	}
}

func WithDeadline(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.Deadline = &d
	}
}

func WithFinancials(total, paid, costs int64) ProjectOption {
	return func(p *domain.Project) {
		p.TotalValue = total
		p.PaidValue = paid
		p.Costs = costs
	}
}

func WithProgress(pct int) ProjectOption {
	return func(p *domain.Project) {
		p.Progress = pct
	}
}

func WithRRT(status domain.RRTStatus, number string) ProjectOption {
	return func(p *domain.Project) {
		p.RRTStatus = status
		p.RRTNumber = number
	}
}

func NewTestProject(title string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:         uuid.New().String(),
		ClientID:   uuid.New().String(),
		ClientName: "Test Client",
		Title:      title,
		Stage:      domain.StageBriefing,
		StartDate:  now.AddDate(0, -1, 0),
		TotalValue: 80_000_00,
		RRTStatus:  domain.RRTPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Transaction options
type TransactionOption func(*domain.Transaction)

func WithTxnType(tt domain.TransactionType) TransactionOption {
	return func(tx *domain.Transaction) {
		tx.Type = tt
	}
}

func WithTxnStatus(s domain.TransactionStatus) TransactionOption {
	return func(tx *domain.Transaction) {
		tx.Status = s
	}
}

func WithTxnDate(d time.Time) TransactionOption {
	return func(tx *domain.Transaction) {
		tx.Date = d
	}
}

func WithTxnProject(projectID string) TransactionOption {
	return func(tx *domain.Transaction) {
		tx.ProjectID = projectID
	}
}

func NewTestTransaction(description string, amount int64, opts ...TransactionOption) *domain.Transaction {
	now := time.Now().UTC()
	tx := &domain.Transaction{
		ID:          uuid.New().String(),
		Description: description,
		Amount:      amount,
		Type:        domain.TxnIncome,
		Status:      domain.TxnPaid,
		Category:    "general",
		Date:        now,
		CreatedAt:   now,
	}
	for _, opt := range opts {
		opt(tx)
	}
	return tx
}
