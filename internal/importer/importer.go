package importer

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/tr013432-design/spazio/internal/db"
	"github.com/tr013432-design/spazio/internal/domain"
	"github.com/tr013432-design/spazio/internal/repository"
	"github.com/tr013432-design/spazio/internal/seed"
)

// Result summarizes an import run.
type Result struct {
	Leads        int
	Projects     int
	Transactions int
	Seeded       bool
}

// Importer loads legacy exports into the SQLite store.
type Importer struct {
	database *sql.DB
	uow      db.UnitOfWork
	logger   *slog.Logger
}

func New(database *sql.DB, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{
		database: database,
		uow:      db.NewSQLiteUnitOfWork(database),
		logger:   logger,
	}
}

// ImportFile imports a legacy export file. The whole import is one
// transaction; a bad record aborts it and leaves the store untouched.
func (im *Importer) ImportFile(ctx context.Context, path string) (*Result, error) {
	export, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return im.importExport(ctx, export)
}

// ImportOrSeed imports the export at path, falling back to the seed dataset
// when the file is missing or malformed. The legacy app behaved the same way
// with a corrupt localStorage blob.
func (im *Importer) ImportOrSeed(ctx context.Context, path string) (*Result, error) {
	export, err := ReadFile(path)
	if err != nil {
		im.logger.Warn("legacy export unusable, falling back to seed dataset", "path", path, "error", err)
		seeded, seedErr := seed.Apply(ctx, im.database)
		if seedErr != nil {
			return nil, fmt.Errorf("seeding after failed import: %w", seedErr)
		}
		return &Result{Seeded: seeded}, nil
	}
	return im.importExport(ctx, export)
}

func (im *Importer) importExport(ctx context.Context, export *LegacyExport) (*Result, error) {
	leads := make([]*domain.Lead, 0, len(export.Leads))
	for _, rec := range export.Leads {
		lead := ConvertLead(rec)
		if err := lead.Validate(); err != nil {
			return nil, fmt.Errorf("lead %q: %w", rec.Name, err)
		}
		leads = append(leads, lead)
	}
	projects := make([]*domain.Project, 0, len(export.Projects))
	for _, rec := range export.Projects {
		p := ConvertProject(rec)
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("project %q: %w", rec.Title, err)
		}
		projects = append(projects, p)
	}
	txns := make([]*domain.Transaction, 0, len(export.Transactions))
	for _, rec := range export.Transactions {
		t := ConvertTransaction(rec)
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("transaction %q: %w", rec.Description, err)
		}
		txns = append(txns, t)
	}

	err := im.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		leadRepo := repository.NewSQLiteLeadRepo(tx)
		projRepo := repository.NewSQLiteProjectRepo(tx)
		txnRepo := repository.NewSQLiteTransactionRepo(tx)

		for _, l := range leads {
			if err := leadRepo.Create(ctx, l); err != nil {
				return err
			}
		}
		for _, p := range projects {
			if err := projRepo.Create(ctx, p); err != nil {
				return err
			}
		}
		for _, t := range txns {
			if err := txnRepo.Create(ctx, t); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("writing import: %w", err)
	}

	im.logger.Info("legacy export imported",
		"leads", len(leads), "projects", len(projects), "transactions", len(txns))

	return &Result{
		Leads:        len(leads),
		Projects:     len(projects),
		Transactions: len(txns),
	}, nil
}
