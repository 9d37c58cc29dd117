// Command fetch-events runs one import cycle against the external catalog
// and exits. Useful for backfilling without waiting for the scheduler.
package main

import (
	"context"
	"flag"
	"time"

	"go.uber.org/zap"

	"github.com/eventmaster/core/internal/config"
	"github.com/eventmaster/core/internal/database"
	"github.com/eventmaster/core/internal/modules/auth"
	"github.com/eventmaster/core/internal/modules/event"
	"github.com/eventmaster/core/internal/modules/image"
	"github.com/eventmaster/core/internal/modules/participant"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	timeout := flag.Duration("timeout", 5*time.Minute, "Abort the run after this long")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := database.Connect(cfg, true)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := auth.Seed(ctx, db, logger, cfg.RootAdmin); err != nil {
		logger.Fatal("seed", zap.Error(err))
	}
	ownerID, err := auth.SystemUserID(ctx, db)
	if err != nil {
		logger.Fatal("resolve system user", zap.Error(err))
	}

	staticDir := config.ResolveRuntimePath(cfg.Paths.Static, "public")
	importer := event.NewImporter(
		event.NewService(db),
		event.NewTicketmasterClient(cfg.Importer.BaseURL, cfg.Importer.APIKey, cfg.Importer.CountryCode, cfg.Importer.PageSize),
		image.NewService(db, staticDir, logger),
		participant.NewService(db),
		ownerID,
		logger,
	)

	report, err := importer.Run(ctx)
	if err != nil {
		logger.Fatal("import run failed", zap.Error(err))
	}
	logger.Info("import finished",
		zap.Int("created", report.Created),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
	)
}
