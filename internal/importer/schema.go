// Package importer reads the legacy browser-export JSON blob and converts it
// into the SQLite store. The legacy app kept everything client-side, so the
// schema is tolerant: optional fields get defaults instead of errors.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// LegacyExport is the top-level JSON structure written by the browser app.
type LegacyExport struct {
	Leads        []LegacyLead        `json:"leads"`
	Projects     []LegacyProject     `json:"projects"`
	Transactions []LegacyTransaction `json:"transactions"`
}

// LegacyLead matches the browser app's Lead shape. Money values are plain
// currency units, dates are YYYY-MM-DD strings, stage labels may be the
// original localized ones.
type LegacyLead struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Source         string       `json:"source"`
	Status         string       `json:"status"`
	Temperature    string       `json:"temperature,omitempty"`
	NextActionDate *string      `json:"nextActionDate,omitempty"`
	Budget         *float64     `json:"budget,omitempty"`
	Notes          string       `json:"notes"`
	CreatedAt      string       `json:"createdAt"`
	Address        *string      `json:"address,omitempty"`
	TaxID          *string      `json:"taxId,omitempty"`
	Tasks          []LegacyTask `json:"tasks,omitempty"`
	LossReason     *string      `json:"lossReason,omitempty"`
}

type LegacyTask struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Completed   bool    `json:"completed"`
	DueDate     *string `json:"dueDate,omitempty"`
}

type LegacyProject struct {
	ID                string                   `json:"id"`
	ClientID          string                   `json:"clientId"`
	ClientName        *string                  `json:"clientName,omitempty"`
	Title             string                   `json:"title"`
	Stage             string                   `json:"stage"`
	StartDate         string                   `json:"startDate"`
	Deadline          *string                  `json:"deadline,omitempty"`
	TotalValue        float64                  `json:"totalValue"`
	PaidValue         float64                  `json:"paidValue"`
	Costs             *float64                 `json:"costs,omitempty"`
	Progress          *int                     `json:"progress,omitempty"`
	RRTStatus         string                   `json:"rrtStatus"`
	RRTNumber         *string                  `json:"rrtNumber,omitempty"`
	DailyLogs         []LegacyDailyLog         `json:"dailyLogs,omitempty"`
	MaterialApprovals []LegacyMaterialApproval `json:"materialApprovals,omitempty"`
}

type LegacyDailyLog struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Content  string  `json:"content"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

type LegacyMaterialApproval struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Status   string `json:"status"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type LegacyTransaction struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	ProjectID   *string `json:"projectId,omitempty"`
}

// ReadFile loads and parses a legacy export file.
func ReadFile(path string) (*LegacyExport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading export file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a legacy export blob.
func Parse(data []byte) (*LegacyExport, error) {
	var export LegacyExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("parsing export blob: %w", err)
	}
	return &export, nil
}
