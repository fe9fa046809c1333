package importer

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tr013432-design/spazio/internal/domain"
)

const dateLayout = "2006-01-02"

// legacy stage labels, both the localized originals and plain identifiers
var leadStageAliases = map[string]domain.LeadStage{
	"prospecção":        domain.LeadProspection,
	"prospection":       domain.LeadProspection,
	"visita técnica":    domain.LeadTechnicalVisit,
	"technical_visit":   domain.LeadTechnicalVisit,
	"briefing":          domain.LeadBriefing,
	"anteprojeto":       domain.LeadConcept,
	"concept":           domain.LeadConcept,
	"contrato assinado": domain.LeadSigned,
	"signed":            domain.LeadSigned,
	"lost":              domain.LeadLost,
}

var projectStageAliases = map[string]domain.ProjectStage{
	"briefing":           domain.StageBriefing,
	"anteprojeto":        domain.StageConcept,
	"concept":            domain.StageConcept,
	"executivo":          domain.StageExecutive,
	"executive":          domain.StageExecutive,
	"obra/acompanhamento": domain.StageConstruction,
	"construction":       domain.StageConstruction,
	"finalizado":         domain.StageCompleted,
	"completed":          domain.StageCompleted,
}

// toCents converts legacy whole-currency amounts.
func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, ok := parseDate(*s)
	if !ok {
		return nil
	}
	return &t
}

func mapLeadStage(s string) domain.LeadStage {
	if stage, ok := leadStageAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return stage
	}
	return domain.LeadProspection
}

func mapProjectStage(s string) domain.ProjectStage {
	if stage, ok := projectStageAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return stage
	}
	return domain.StageBriefing
}

// ConvertLead normalizes a legacy lead record, filling defaults for every
// optional field the browser app may have dropped.
func ConvertLead(rec LegacyLead) *domain.Lead {
	now := time.Now().UTC()

	lead := &domain.Lead{
		ID:          rec.ID,
		Name:        rec.Name,
		Email:       rec.Email,
		Phone:       rec.Phone,
		Source:      strings.ToLower(strings.TrimSpace(rec.Source)),
		Notes:       rec.Notes,
		Stage:       mapLeadStage(rec.Status),
		Temperature: domain.LeadTemperature(strings.ToLower(rec.Temperature)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	if lead.Source == "" {
		lead.Source = "other"
	}
	if !domain.ValidTemperature(lead.Temperature) {
		lead.Temperature = domain.TempWarm
	}
	if rec.Budget != nil && *rec.Budget > 0 {
		lead.Budget = toCents(*rec.Budget)
	}
	if created, ok := parseDate(rec.CreatedAt); ok {
		lead.CreatedAt = created
		lead.UpdatedAt = created
	}
	lead.NextActionDate = parseDatePtr(rec.NextActionDate)
	if rec.Address != nil {
		lead.Address = *rec.Address
	}
	if rec.TaxID != nil {
		lead.TaxID = *rec.TaxID
	}
	if rec.LossReason != nil {
		reason := domain.LossReason(strings.ToLower(*rec.LossReason))
		if domain.ValidLossReason(reason) {
			lead.Stage = domain.LeadLost
			lead.LossReason = &reason
			lostAt := lead.CreatedAt
			lead.LostAt = &lostAt
		}
	}

	for _, t := range rec.Tasks {
		task := domain.Task{
			ID:          t.ID,
			LeadID:      lead.ID,
			Description: t.Description,
			Completed:   t.Completed,
			DueDate:     parseDatePtr(t.DueDate),
			CreatedAt:   lead.CreatedAt,
		}
		if task.ID == "" {
			task.ID = uuid.New().String()
		}
		lead.Tasks = append(lead.Tasks, task)
	}
	return lead
}

// ConvertProject normalizes a legacy project record.
func ConvertProject(rec LegacyProject) *domain.Project {
	now := time.Now().UTC()

	p := &domain.Project{
		ID:         rec.ID,
		ClientID:   rec.ClientID,
		Title:      rec.Title,
		Stage:      mapProjectStage(rec.Stage),
		TotalValue: toCents(rec.TotalValue),
		PaidValue:  toCents(rec.PaidValue),
		RRTStatus:  domain.RRTStatus(strings.ToLower(rec.RRTStatus)),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if rec.ClientName != nil {
		p.ClientName = *rec.ClientName
	}
	if start, ok := parseDate(rec.StartDate); ok {
		p.StartDate = start
		p.CreatedAt = start
		p.UpdatedAt = start
	} else {
		p.StartDate = now
	}
	p.Deadline = parseDatePtr(rec.Deadline)
	if rec.Costs != nil && *rec.Costs > 0 {
		p.Costs = toCents(*rec.Costs)
	}
	if rec.Progress != nil {
		p.Progress = *rec.Progress
	}
	if p.Progress < 0 {
		p.Progress = 0
	}
	if p.Progress > 100 {
		p.Progress = 100
	}
	// The legacy app never enforced the paid ceiling.
	if p.PaidValue > p.TotalValue {
		p.PaidValue = p.TotalValue
	}
	switch p.RRTStatus {
	case domain.RRTPending, domain.RRTIssued, domain.RRTPaid:
	default:
		p.RRTStatus = domain.RRTPending
	}
	if rec.RRTNumber != nil {
		p.RRTNumber = *rec.RRTNumber
	}

	for _, l := range rec.DailyLogs {
		log := domain.DailyLog{
			ID:        l.ID,
			ProjectID: p.ID,
			Content:   l.Content,
			CreatedAt: p.CreatedAt,
		}
		if log.ID == "" {
			log.ID = uuid.New().String()
		}
		if d, ok := parseDate(l.Date); ok {
			log.Date = d
		} else {
			log.Date = p.StartDate
		}
		if l.ImageURL != nil {
			log.ImageURL = *l.ImageURL
		}
		p.DailyLogs = append(p.DailyLogs, log)
	}

	for _, m := range rec.MaterialApprovals {
		mat := domain.MaterialApproval{
			ID:        m.ID,
			ProjectID: p.ID,
			Name:      m.Name,
			Category:  m.Category,
			Status:    domain.MaterialStatus(strings.ToLower(m.Status)),
			ImageURL:  m.ImageURL,
			CreatedAt: p.CreatedAt,
		}
		if mat.ID == "" {
			mat.ID = uuid.New().String()
		}
		switch mat.Status {
		case domain.MaterialPending, domain.MaterialApproved, domain.MaterialRejected:
		default:
			mat.Status = domain.MaterialPending
		}
		p.MaterialApprovals = append(p.MaterialApprovals, mat)
	}
	return p
}

// ConvertTransaction normalizes a legacy ledger entry.
func ConvertTransaction(rec LegacyTransaction) *domain.Transaction {
	now := time.Now().UTC()

	t := &domain.Transaction{
		ID:          rec.ID,
		Type:        domain.TransactionType(strings.ToLower(rec.Type)),
		Category:    rec.Category,
		Amount:      toCents(rec.Amount),
		Description: rec.Description,
		Status:      domain.TransactionStatus(strings.ToLower(rec.Status)),
		CreatedAt:   now,
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Type != domain.TxnIncome && t.Type != domain.TxnExpense {
		t.Type = domain.TxnExpense
	}
	if t.Status != domain.TxnPaid && t.Status != domain.TxnPending {
		t.Status = domain.TxnPending
	}
	if d, ok := parseDate(rec.Date); ok {
		t.Date = d
		t.CreatedAt = d
	} else {
		t.Date = now
	}
	if rec.ProjectID != nil {
		t.ProjectID = *rec.ProjectID
	}
	return t
}
