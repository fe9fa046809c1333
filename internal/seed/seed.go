// Package seed provides the starter dataset applied to an empty database,
// mirroring life in a small architecture studio.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tr013432-design/spazio/internal/domain"
	"github.com/tr013432-design/spazio/internal/repository"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(fmt.Sprintf("seed: bad date %q", s))
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

// Leads returns the starter CRM board.
func Leads() []*domain.Lead {
	return []*domain.Lead{
		{
			ID:             "seed-lead-1",
			Name:           "Marcos Vinicius",
			Email:          "marcos@email.com",
			Phone:          "11988887777",
			Source:         "instagram",
			Stage:          domain.LeadProspection,
			Temperature:    domain.TempHot,
			NextActionDate: datePtr("2023-10-20"),
			CreatedAt:      date("2023-10-25"),
			UpdatedAt:      date("2023-10-25"),
			Notes:          "Penthouse renovation in Itaim. Wants an industrial-chic look.",
			Budget:         85_000_00,
			Address:        "Av. Paulista, 1000 - SP",
			TaxID:          "123.456.789-00",
			Tasks: []domain.Task{
				{ID: "seed-task-1", LeadID: "seed-lead-1", Description: "Send the luxury penthouse portfolio", Completed: false},
			},
		},
		{
			ID:             "seed-lead-2",
			Name:           "Clara Nunes",
			Email:          "clara@email.com",
			Phone:          "11977776666",
			Source:         "referral",
			Stage:          domain.LeadBriefing,
			Temperature:    domain.TempWarm,
			NextActionDate: datePtr("2025-12-25"),
			CreatedAt:      date("2023-10-20"),
			UpdatedAt:      date("2023-10-20"),
			Notes:          "Interior design consultancy for the living room.",
			Budget:         15_000_00,
		},
	}
}

// Projects returns the starter project book.
func Projects() []*domain.Project {
	return []*domain.Project{
		{
			ID:         "seed-proj-1",
			ClientID:   "seed-client-1",
			ClientName: "Familia Andrade",
			Title:      "Apartamento Ipanema",
			Stage:      domain.StageConstruction,
			StartDate:  date("2023-08-15"),
			Deadline:   datePtr("2023-12-20"),
			TotalValue: 15_000_00,
			PaidValue:  11_250_00,
			Progress:   75,
			RRTStatus:  domain.RRTPaid,
			RRTNumber:  "RRT-2023-9988",
			CreatedAt:  date("2023-08-15"),
			UpdatedAt:  date("2023-11-21"),
			DailyLogs: []domain.DailyLog{
				{
					ID:        "seed-log-1",
					ProjectID: "seed-proj-1",
					Date:      date("2023-11-20"),
					Content:   "Living room floor laying started. Material delivered on schedule.",
					ImageURL:  "https://images.unsplash.com/photo-1581858726788-75bc0f6a952d?auto=format&fit=crop&w=800",
					CreatedAt: date("2023-11-20"),
				},
				{
					ID:        "seed-log-2",
					ProjectID: "seed-proj-1",
					Date:      date("2023-11-21"),
					Content:   "Base coat finished in the bedrooms. Waiting to dry before the second pass.",
					CreatedAt: date("2023-11-21"),
				},
			},
			MaterialApprovals: []domain.MaterialApproval{
				{
					ID:        "seed-mat-1",
					ProjectID: "seed-proj-1",
					Name:      "Carrara marble",
					Category:  "Kitchen countertop",
					Status:    domain.MaterialApproved,
					ImageURL:  "https://images.unsplash.com/photo-1600585152220-90363fe7e115?auto=format&fit=crop&w=300",
					CreatedAt: date("2023-11-01"),
				},
				{
					ID:        "seed-mat-2",
					ProjectID: "seed-proj-1",
					Name:      "Grey porcelain tile",
					Category:  "Living/bedrooms",
					Status:    domain.MaterialPending,
					ImageURL:  "https://images.unsplash.com/photo-1516455590571-18256e5bb9ff?auto=format&fit=crop&w=300",
					CreatedAt: date("2023-11-01"),
				},
			},
		},
		{
			ID:         "seed-proj-2",
			ClientID:   "seed-client-2",
			ClientName: "Ricardo Alves",
			Title:      "Casa de Campo - Itatiba",
			Stage:      domain.StageConcept,
			StartDate:  date("2023-10-01"),
			Deadline:   datePtr("2024-03-15"),
			TotalValue: 45_000_00,
			PaidValue:  13_500_00,
			Progress:   30,
			RRTStatus:  domain.RRTPending,
			CreatedAt:  date("2023-10-01"),
			UpdatedAt:  date("2023-10-01"),
		},
	}
}

// Transactions returns the starter ledger.
func Transactions() []*domain.Transaction {
	return []*domain.Transaction{
		{
			ID: "seed-txn-1", Type: domain.TxnIncome, Category: "project", Amount: 8_500_00,
			Date: date("2023-11-01"), Description: "First installment - Apt Ipanema",
			Status: domain.TxnPaid, ProjectID: "seed-proj-1", CreatedAt: date("2023-11-01"),
		},
		{
			ID: "seed-txn-2", Type: domain.TxnExpense, Category: "marketing", Amount: 500_00,
			Date: date("2023-11-02"), Description: "Instagram ads",
			Status: domain.TxnPaid, CreatedAt: date("2023-11-02"),
		},
		{
			ID: "seed-txn-3", Type: domain.TxnExpense, Category: "software", Amount: 250_00,
			Date: date("2023-11-05"), Description: "Studio software subscription",
			Status: domain.TxnPending, CreatedAt: date("2023-11-05"),
		},
		{
			ID: "seed-txn-4", Type: domain.TxnIncome, Category: "consulting", Amount: 1_200_00,
			Date: date("2023-11-10"), Description: "Technical visit, Ricardo's site",
			Status: domain.TxnPaid, CreatedAt: date("2023-11-10"),
		},
	}
}

// Apply inserts the starter dataset when the database holds no leads and no
// projects. Returns true when seeding ran.
func Apply(ctx context.Context, database *sql.DB) (bool, error) {
	leadRepo := repository.NewSQLiteLeadRepo(database)
	projRepo := repository.NewSQLiteProjectRepo(database)
	txnRepo := repository.NewSQLiteTransactionRepo(database)

	leads, err := leadRepo.ListActive(ctx)
	if err != nil {
		return false, fmt.Errorf("checking for existing leads: %w", err)
	}
	projects, err := projRepo.List(ctx)
	if err != nil {
		return false, fmt.Errorf("checking for existing projects: %w", err)
	}
	if len(leads) > 0 || len(projects) > 0 {
		return false, nil
	}

	for _, l := range Leads() {
		if err := leadRepo.Create(ctx, l); err != nil {
			return false, fmt.Errorf("seeding lead %s: %w", l.Name, err)
		}
	}
	for _, p := range Projects() {
		if err := projRepo.Create(ctx, p); err != nil {
			return false, fmt.Errorf("seeding project %s: %w", p.Title, err)
		}
	}
	for _, t := range Transactions() {
		if err := txnRepo.Create(ctx, t); err != nil {
			return false, fmt.Errorf("seeding transaction %s: %w", t.Description, err)
		}
	}
	return true, nil
}
