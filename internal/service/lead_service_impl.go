package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tr013432-design/spazio/internal/db"
	"github.com/tr013432-design/spazio/internal/domain"
	"github.com/tr013432-design/spazio/internal/notify"
	"github.com/tr013432-design/spazio/internal/repository"
)

type leadService struct {
	leads    repository.LeadRepo
	uow      db.UnitOfWork
	notifier notify.Notifier
	observer UseCaseObserver
}

func NewLeadService(leads repository.LeadRepo, uow db.UnitOfWork, notifier notify.Notifier, observers ...UseCaseObserver) LeadService {
	if notifier == nil {
		notifier = notify.NoopNotifier{}
	}
	return &leadService{
		leads:    leads,
		uow:      uow,
		notifier: notifier,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *leadService) Create(ctx context.Context, l *domain.Lead) error {
	return observe(ctx, s.observer, "lead.create", map[string]any{"name": l.Name}, func() error {
		if l.ID == "" {
			l.ID = uuid.New().String()
		}
		now := time.Now().UTC()
		l.CreatedAt = now
		l.UpdatedAt = now
		if l.Stage == "" {
			l.Stage = domain.LeadProspection
		}
		if l.Temperature == "" {
			l.Temperature = domain.TempWarm
		}
		for i := range l.Tasks {
			if l.Tasks[i].ID == "" {
				l.Tasks[i].ID = uuid.New().String()
			}
			l.Tasks[i].LeadID = l.ID
		}
		if err := l.Validate(); err != nil {
			return err
		}
		if err := s.leads.Create(ctx, l); err != nil {
			return err
		}
		notifyAsync(ctx, s.notifier, fmt.Sprintf("*New lead*: %s (%s)", l.Name, l.Source))
		return nil
	})
}

func (s *leadService) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	return s.leads.GetByID(ctx, id)
}

func (s *leadService) ListActive(ctx context.Context) ([]*domain.Lead, error) {
	return s.leads.ListActive(ctx)
}

func (s *leadService) ListLost(ctx context.Context) ([]*domain.Lead, error) {
	return s.leads.ListLost(ctx)
}

func (s *leadService) Update(ctx context.Context, l *domain.Lead) error {
	if err := l.Validate(); err != nil {
		return err
	}
	l.UpdatedAt = time.Now().UTC()
	return s.leads.Update(ctx, l)
}

func (s *leadService) SetStage(ctx context.Context, id string, stage domain.LeadStage) error {
	return observe(ctx, s.observer, "lead.set_stage", map[string]any{"lead_id": id, "stage": string(stage)}, func() error {
		if !domain.ValidLeadStage(stage) || stage == domain.LeadLost {
			return fmt.Errorf("%w: %q is not a pipeline stage", domain.ErrInvalidStage, stage)
		}
		if err := s.leads.SetStage(ctx, id, stage); err != nil {
			return err
		}
		notifyAsync(ctx, s.notifier, fmt.Sprintf("Lead moved to *%s*", stage))
		return nil
	})
}

func (s *leadService) MarkLost(ctx context.Context, id string, reason domain.LossReason) error {
	return observe(ctx, s.observer, "lead.mark_lost", map[string]any{"lead_id": id, "reason": string(reason)}, func() error {
		if !domain.ValidLossReason(reason) {
			return fmt.Errorf("%w: %q", domain.ErrLossReason, reason)
		}
		if err := s.leads.MarkLost(ctx, id, reason, time.Now().UTC()); err != nil {
			return err
		}
		notifyAsync(ctx, s.notifier, fmt.Sprintf("Lead lost (*%s*)", reason))
		return nil
	})
}

// ConvertToProject turns a signed lead into a briefing-stage project. The
// project is created and the lead removed in one transaction.
func (s *leadService) ConvertToProject(ctx context.Context, id string) (*domain.Project, error) {
	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead.Stage != domain.LeadSigned {
		return nil, fmt.Errorf("%w: only signed leads can become projects, lead is %q", domain.ErrInvalidStage, lead.Stage)
	}

	now := time.Now().UTC()
	project := &domain.Project{
		ID:         uuid.New().String(),
		ClientID:   lead.ID,
		ClientName: lead.Name,
		Title:      fmt.Sprintf("%s project", lead.Name),
		Stage:      domain.StageBriefing,
		StartDate:  now,
		TotalValue: lead.Budget,
		RRTStatus:  domain.RRTPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteProjectRepo(tx).Create(ctx, project); err != nil {
			return err
		}
		return repository.NewSQLiteLeadRepo(tx).Delete(ctx, lead.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("converting lead %s: %w", id, err)
	}

	notifyAsync(ctx, s.notifier, fmt.Sprintf("*Signed!* %s is now a project", lead.Name))
	return project, nil
}

func (s *leadService) Delete(ctx context.Context, id string) error {
	return s.leads.Delete(ctx, id)
}

func (s *leadService) AddTask(ctx context.Context, leadID, description string) (*domain.Task, error) {
	task := &domain.Task{
		ID:          uuid.New().String(),
		LeadID:      leadID,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.leads.AddTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *leadService) SetTaskCompleted(ctx context.Context, taskID string, completed bool) error {
	return s.leads.SetTaskCompleted(ctx, taskID, completed)
}

func (s *leadService) DeleteTask(ctx context.Context, taskID string) error {
	return s.leads.DeleteTask(ctx, taskID)
}
