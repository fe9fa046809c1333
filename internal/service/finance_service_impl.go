package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tr013432-design/spazio/internal/domain"
	"github.com/tr013432-design/spazio/internal/insights"
	"github.com/tr013432-design/spazio/internal/repository"
)

type financeService struct {
	transactions repository.TransactionRepo
	observer     UseCaseObserver
}

func NewFinanceService(transactions repository.TransactionRepo, observers ...UseCaseObserver) FinanceService {
	return &financeService{
		transactions: transactions,
		observer:     useCaseObserverOrNoop(observers),
	}
}

// Record appends one ledger entry. Entries are immutable afterwards.
func (s *financeService) Record(ctx context.Context, t *domain.Transaction) error {
	return observe(ctx, s.observer, "finance.record", map[string]any{"type": string(t.Type)}, func() error {
		if t.ID == "" {
			t.ID = uuid.New().String()
		}
		if t.Date.IsZero() {
			t.Date = time.Now().UTC()
		}
		if t.Status == "" {
			t.Status = domain.TxnPending
		}
		t.CreatedAt = time.Now().UTC()
		if err := t.Validate(); err != nil {
			return err
		}
		return s.transactions.Create(ctx, t)
	})
}

func (s *financeService) List(ctx context.Context) ([]*domain.Transaction, error) {
	return s.transactions.List(ctx)
}

func (s *financeService) ListByProject(ctx context.Context, projectID string) ([]*domain.Transaction, error) {
	return s.transactions.ListByProject(ctx, projectID)
}

func (s *financeService) Summary(ctx context.Context) (*FinanceSummary, error) {
	txns, err := s.transactions.List(ctx)
	if err != nil {
		return nil, err
	}

	var realizedExpenses int64
	for _, t := range txns {
		if t.Realized() && t.Type == domain.TxnExpense {
			realizedExpenses += t.Amount
		}
	}
	income := insights.RealizedIncome(txns)

	return &FinanceSummary{
		RealizedIncome:   income,
		RealizedExpenses: realizedExpenses,
		RealizedBalance:  income - realizedExpenses,
		PendingExpenses:  insights.PendingExpenses(txns),
		Cashflow:         insights.MonthlyCashflow(txns),
	}, nil
}
