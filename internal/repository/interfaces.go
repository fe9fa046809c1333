package repository

import (
	"context"
	"time"

	"github.com/tr013432-design/spazio/internal/domain"
)

type LeadRepo interface {
	Create(ctx context.Context, l *domain.Lead) error
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	// ListActive returns every lead still on the board, tasks included.
	// Lost leads never appear here.
	ListActive(ctx context.Context) ([]*domain.Lead, error)
	ListLost(ctx context.Context) ([]*domain.Lead, error)
	Update(ctx context.Context, l *domain.Lead) error
	SetStage(ctx context.Context, id string, stage domain.LeadStage) error
	MarkLost(ctx context.Context, id string, reason domain.LossReason, at time.Time) error
	Delete(ctx context.Context, id string) error

	AddTask(ctx context.Context, t *domain.Task) error
	SetTaskCompleted(ctx context.Context, taskID string, completed bool) error
	DeleteTask(ctx context.Context, taskID string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	// GetByID loads the project with its daily logs and material approvals.
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	SetStage(ctx context.Context, id string, stage domain.ProjectStage) error
	SetRRT(ctx context.Context, id string, status domain.RRTStatus, number string) error
	SetPaidValue(ctx context.Context, id string, paid int64) error
	SetProgress(ctx context.Context, id string, progress int) error
	Delete(ctx context.Context, id string) error

	AddDailyLog(ctx context.Context, l *domain.DailyLog) error
	AddMaterial(ctx context.Context, m *domain.MaterialApproval) error
	GetMaterial(ctx context.Context, materialID string) (*domain.MaterialApproval, error)
	SetMaterialStatus(ctx context.Context, materialID string, status domain.MaterialStatus) error
}

type TransactionRepo interface {
	Create(ctx context.Context, t *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	List(ctx context.Context) ([]*domain.Transaction, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Transaction, error)
}
