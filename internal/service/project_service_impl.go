package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/tr013432-design/spazio/internal/db"
	"github.com/tr013432-design/spazio/internal/domain"
	"github.com/tr013432-design/spazio/internal/notify"
	"github.com/tr013432-design/spazio/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
	uow      db.UnitOfWork
	notifier notify.Notifier
	observer UseCaseObserver
}

func NewProjectService(projects repository.ProjectRepo, uow db.UnitOfWork, notifier notify.Notifier, observers ...UseCaseObserver) ProjectService {
	if notifier == nil {
		notifier = notify.NoopNotifier{}
	}
	return &projectService{
		projects: projects,
		uow:      uow,
		notifier: notifier,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	return observe(ctx, s.observer, "project.create", map[string]any{"title": p.Title}, func() error {
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		now := time.Now().UTC()
		p.CreatedAt = now
		p.UpdatedAt = now
		if p.Stage == "" {
			p.Stage = domain.StageBriefing
		}
		if p.RRTStatus == "" {
			p.RRTStatus = domain.RRTPending
		}
		if p.StartDate.IsZero() {
			p.StartDate = now
		}
		if err := p.Validate(); err != nil {
			return err
		}
		if err := s.projects.Create(ctx, p); err != nil {
			return err
		}
		notifyAsync(ctx, s.notifier, fmt.Sprintf("*New project*: %s for %s", p.Title, p.ClientName))
		return nil
	})
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) SetStage(ctx context.Context, id string, stage domain.ProjectStage) error {
	return observe(ctx, s.observer, "project.set_stage", map[string]any{"project_id": id, "stage": string(stage)}, func() error {
		if !domain.ValidProjectStage(stage) {
			return fmt.Errorf("%w: %q", domain.ErrInvalidStage, stage)
		}
		return s.projects.SetStage(ctx, id, stage)
	})
}

func (s *projectService) SetProgress(ctx context.Context, id string, progress int) error {
	if progress < 0 || progress > 100 {
		return fmt.Errorf("%w: progress must be between 0 and 100", domain.ErrValidation)
	}
	return s.projects.SetProgress(ctx, id, progress)
}

func (s *projectService) IssueRRT(ctx context.Context, id string) (string, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if p.RRTStatus != domain.RRTPending {
		return "", fmt.Errorf("%w: project %s already holds %s", domain.ErrRRTIssued, id, p.RRTNumber)
	}

	number := fmt.Sprintf("RRT-%d-%04d", time.Now().UTC().Year(), rand.Intn(10000))
	if err := s.projects.SetRRT(ctx, id, domain.RRTIssued, number); err != nil {
		return "", err
	}
	notifyAsync(ctx, s.notifier, fmt.Sprintf("RRT *%s* issued for %s", number, p.Title))
	return number, nil
}

func (s *projectService) MarkRRTPaid(ctx context.Context, id string) error {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.RRTStatus != domain.RRTIssued {
		return fmt.Errorf("%w: RRT must be issued before it can be paid, status is %q", domain.ErrValidation, p.RRTStatus)
	}
	return s.projects.SetRRT(ctx, id, domain.RRTPaid, p.RRTNumber)
}

func (s *projectService) ChargeMilestone(ctx context.Context, id string) (int64, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	charge := p.TotalValue / 4
	if p.PaidValue+charge > p.TotalValue {
		charge = p.TotalValue - p.PaidValue
	}
	if charge <= 0 {
		return 0, fmt.Errorf("%w: project %s is fully paid", domain.ErrValidation, id)
	}

	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:          uuid.New().String(),
		Type:        domain.TxnIncome,
		Category:    "milestone",
		Amount:      charge,
		Date:        now,
		Description: fmt.Sprintf("Milestone payment, %s", p.Title),
		Status:      domain.TxnPaid,
		ProjectID:   p.ID,
		CreatedAt:   now,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteProjectRepo(tx).SetPaidValue(ctx, id, p.PaidValue+charge); err != nil {
			return err
		}
		return repository.NewSQLiteTransactionRepo(tx).Create(ctx, txn)
	})
	if err != nil {
		return 0, fmt.Errorf("charging milestone on %s: %w", id, err)
	}

	notifyAsync(ctx, s.notifier, fmt.Sprintf("*Milestone charged* on %s", p.Title))
	return charge, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}

func (s *projectService) AddDailyLog(ctx context.Context, projectID, content, imageURL string) (*domain.DailyLog, error) {
	now := time.Now().UTC()
	log := &domain.DailyLog{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Date:      now,
		Content:   content,
		ImageURL:  imageURL,
		CreatedAt: now,
	}
	if err := s.projects.AddDailyLog(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *projectService) AddMaterial(ctx context.Context, projectID, name, category, imageURL string) (*domain.MaterialApproval, error) {
	m := &domain.MaterialApproval{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		Category:  category,
		Status:    domain.MaterialPending,
		ImageURL:  imageURL,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.projects.AddMaterial(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *projectService) ReviewMaterial(ctx context.Context, materialID string, approved bool) error {
	m, err := s.projects.GetMaterial(ctx, materialID)
	if err != nil {
		return err
	}
	if m.Status != domain.MaterialPending {
		return fmt.Errorf("%w: material already %s", domain.ErrValidation, m.Status)
	}
	status := domain.MaterialRejected
	if approved {
		status = domain.MaterialApproved
	}
	return s.projects.SetMaterialStatus(ctx, materialID, status)
}
