package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tr013432-design/spazio/internal/domain"
	"github.com/tr013432-design/spazio/internal/insights"
	"github.com/tr013432-design/spazio/internal/repository"
)

type statusService struct {
	leads        repository.LeadRepo
	projects     repository.ProjectRepo
	transactions repository.TransactionRepo
}

func NewStatusService(leads repository.LeadRepo, projects repository.ProjectRepo, transactions repository.TransactionRepo) StatusService {
	return &statusService{
		leads:        leads,
		projects:     projects,
		transactions: transactions,
	}
}

func (s *statusService) Snapshot(ctx context.Context, now time.Time) (*StatusSnapshot, error) {
	leads, err := s.leads.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading leads: %w", err)
	}
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	txns, err := s.transactions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}

	snap := &StatusSnapshot{
		NewLeads:         len(leads),
		RealizedIncome:   insights.RealizedIncome(txns),
		PendingExpenses:  insights.PendingExpenses(txns),
		Receivable:       insights.ReceivableBalance(projects),
		LeadDistribution: insights.LeadStageDistribution(leads),
		ProjDistribution: insights.ProjectStageDistribution(projects),
		Cashflow:         insights.MonthlyCashflow(txns),
		GeneratedAt:      now,
	}

	for _, p := range projects {
		if p.Stage != domain.StageCompleted {
			snap.ActiveProjects++
		}
		if p.RRTStatus == domain.RRTPending {
			snap.RRTPending++
		}
	}
	for _, l := range leads {
		if insights.IsOverdue(l.NextActionDate, now) {
			snap.OverdueLeads = append(snap.OverdueLeads, l)
		}
	}
	return snap, nil
}
