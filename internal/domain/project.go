package domain

import (
	"fmt"
	"strings"
	"time"
)

// Project is one contracted engagement, from briefing through construction.
// TotalValue, PaidValue and Costs are in cents.
type Project struct {
	ID         string
	ClientID   string
	ClientName string
	Title      string
	Stage      ProjectStage
	StartDate  time.Time
	Deadline   *time.Time
	TotalValue int64
	PaidValue  int64
	Costs      int64
	Progress   int // 0-100
	RRTStatus  RRTStatus
	RRTNumber  string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	DailyLogs         []DailyLog
	MaterialApprovals []MaterialApproval
}

// DailyLog is one dated construction-diary entry.
type DailyLog struct {
	ID        string
	ProjectID string
	Date      time.Time
	Content   string
	ImageURL  string
	CreatedAt time.Time
}

// MaterialApproval is one material sample awaiting the client's sign-off.
type MaterialApproval struct {
	ID        string
	ProjectID string
	Name      string
	Category  string
	Status    MaterialStatus
	ImageURL  string
	CreatedAt time.Time
}

func (p *Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: project title is required", ErrValidation)
	}
	if !ValidProjectStage(p.Stage) {
		return fmt.Errorf("%w: unknown project stage %q", ErrInvalidStage, p.Stage)
	}
	if p.TotalValue < 0 || p.PaidValue < 0 || p.Costs < 0 {
		return fmt.Errorf("%w: financial values must not be negative", ErrValidation)
	}
	if p.PaidValue > p.TotalValue {
		return fmt.Errorf("%w: paid value exceeds contracted value", ErrValidation)
	}
	if p.Progress < 0 || p.Progress > 100 {
		return fmt.Errorf("%w: progress must be between 0 and 100", ErrValidation)
	}
	return nil
}

// Outstanding returns the unpaid balance of the contract.
func (p *Project) Outstanding() int64 {
	return p.TotalValue - p.PaidValue
}

// DisplayID returns a short identifier for lists and logs.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// PendingMaterials counts materials still awaiting approval.
func (p *Project) PendingMaterials() int {
	n := 0
	for _, m := range p.MaterialApprovals {
		if m.Status == MaterialPending {
			n++
		}
	}
	return n
}
