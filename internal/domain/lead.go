package domain

import (
	"fmt"
	"strings"
	"time"
)

// Lead is one prospect moving through the commercial pipeline.
// Money values are stored in cents.
type Lead struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	Source         string
	Notes          string
	Budget         int64 // cents, 0 when not discussed yet
	Stage          LeadStage
	Temperature    LeadTemperature
	NextActionDate *time.Time
	Address        string
	TaxID          string
	LossReason     *LossReason
	LostAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Tasks []Task
}

// Task is a follow-up item owned by a lead.
type Task struct {
	ID          string
	LeadID      string
	Description string
	Completed   bool
	DueDate     *time.Time
	CreatedAt   time.Time
}

// Validate checks the fields required at intake.
func (l *Lead) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("%w: lead name is required", ErrValidation)
	}
	if l.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative", ErrValidation)
	}
	if !ValidLeadStage(l.Stage) {
		return fmt.Errorf("%w: unknown lead stage %q", ErrInvalidStage, l.Stage)
	}
	if l.Temperature != "" && !ValidTemperature(l.Temperature) {
		return fmt.Errorf("%w: unknown temperature %q", ErrValidation, l.Temperature)
	}
	return nil
}

// IsLost reports whether the lead has left the active board.
func (l *Lead) IsLost() bool {
	return l.Stage == LeadLost
}

// WhatsAppDigits returns the phone number stripped to digits for wa.me links.
func (l *Lead) WhatsAppDigits() string {
	var b strings.Builder
	for _, r := range l.Phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DisplayID returns a short identifier for lists and logs.
func (l *Lead) DisplayID() string {
	if len(l.ID) >= 8 {
		return l.ID[:8]
	}
	return l.ID
}

// OpenTasks counts tasks not yet completed.
func (l *Lead) OpenTasks() int {
	n := 0
	for _, t := range l.Tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}
