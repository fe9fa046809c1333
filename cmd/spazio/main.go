package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/tr013432-design/spazio/internal/cli"
	"github.com/tr013432-design/spazio/internal/config"
	"github.com/tr013432-design/spazio/internal/db"
	"github.com/tr013432-design/spazio/internal/importer"
	"github.com/tr013432-design/spazio/internal/intelligence"
	"github.com/tr013432-design/spazio/internal/llm"
	"github.com/tr013432-design/spazio/internal/notify"
	"github.com/tr013432-design/spazio/internal/portal"
	"github.com/tr013432-design/spazio/internal/repository"
	"github.com/tr013432-design/spazio/internal/seed"
	"github.com/tr013432-design/spazio/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return err
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// First run gets the starter dataset so the board is never blank.
	if seeded, err := seed.Apply(context.Background(), database); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	} else if seeded {
		logger.Info("applied starter dataset", "db", dbPath)
	}

	leadRepo := repository.NewSQLiteLeadRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	txnRepo := repository.NewSQLiteTransactionRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var notifier notify.Notifier = notify.NoopNotifier{}
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		notifier = notify.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, logger)
	}

	observer := service.NewLogUseCaseObserver(os.Stderr)

	app := &cli.App{
		Leads:    service.NewLeadService(leadRepo, uow, notifier, observer),
		Projects: service.NewProjectService(projectRepo, uow, notifier, observer),
		Finance:  service.NewFinanceService(txnRepo, observer),
		Status:   service.NewStatusService(leadRepo, projectRepo, txnRepo),
		Importer: importer.New(database, logger),

		PortalAddr:        cfg.Portal.Addr,
		PortalAllowOrigin: cfg.Portal.AllowOrigin,
		Logger:            logger,
	}

	if cfg.Portal.Secret != "" {
		app.ShareLinks = portal.NewShareLinkIssuer(cfg.Portal.Secret, cfg.Portal.LinkTTL)
	}

	// AI features switch on only when an API key is present.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled() {
		var obs llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			obs = llm.NewLogObserver(os.Stderr)
		}
		app.Studio = intelligence.NewStudioService(llm.NewGeminiClient(llmCfg, obs))
	}

	// A bare "spazio" on a terminal opens the board instead of help.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
