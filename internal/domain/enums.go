package domain

type LeadStage string

const (
	LeadProspection    LeadStage = "prospection"
	LeadTechnicalVisit LeadStage = "technical_visit"
	LeadBriefing       LeadStage = "briefing"
	LeadConcept        LeadStage = "concept"
	LeadSigned         LeadStage = "signed"

	// LeadLost is the absorbing state outside the pipeline order. Lost leads
	// keep their record (with a loss reason) but never appear on the board.
	LeadLost LeadStage = "lost"
)

type LeadTemperature string

const (
	TempHot  LeadTemperature = "hot"
	TempWarm LeadTemperature = "warm"
	TempCold LeadTemperature = "cold"
)

type LossReason string

const (
	LossPriceTooHigh LossReason = "price_too_high"
	LossCompetitor   LossReason = "competitor"
	LossWithdrawn    LossReason = "withdrawn"
	LossNoContact    LossReason = "no_contact"
)

// LossReasons is the fixed set of reasons the loss-confirmation flow offers.
var LossReasons = []LossReason{
	LossPriceTooHigh,
	LossCompetitor,
	LossWithdrawn,
	LossNoContact,
}

type ProjectStage string

const (
	StageBriefing     ProjectStage = "briefing"
	StageConcept      ProjectStage = "concept"
	StageExecutive    ProjectStage = "executive"
	StageConstruction ProjectStage = "construction"
	StageCompleted    ProjectStage = "completed"
)

type RRTStatus string

const (
	RRTPending RRTStatus = "pending"
	RRTIssued  RRTStatus = "issued"
	RRTPaid    RRTStatus = "paid"
)

type MaterialStatus string

const (
	MaterialPending  MaterialStatus = "pending"
	MaterialApproved MaterialStatus = "approved"
	MaterialRejected MaterialStatus = "rejected"
)

type TransactionType string

const (
	TxnIncome  TransactionType = "income"
	TxnExpense TransactionType = "expense"
)

type TransactionStatus string

const (
	TxnPaid    TransactionStatus = "paid"
	TxnPending TransactionStatus = "pending"
)

// ValidLeadSources is the canonical set of accepted lead source channels.
// Free text is tolerated on import; the intake form offers these.
var ValidLeadSources = map[string]bool{
	"instagram": true, "referral": true, "website": true,
	"whatsapp": true, "event": true, "other": true,
}

func ValidTemperature(t LeadTemperature) bool {
	switch t {
	case TempHot, TempWarm, TempCold:
		return true
	}
	return false
}

func ValidLossReason(r LossReason) bool {
	for _, known := range LossReasons {
		if r == known {
			return true
		}
	}
	return false
}
