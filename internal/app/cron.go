package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/eventmaster/core/internal/config"
	"github.com/eventmaster/core/internal/modules/auth"
	"github.com/eventmaster/core/internal/modules/event"
	"github.com/eventmaster/core/internal/modules/image"
	"github.com/eventmaster/core/internal/modules/participant"
	pkgcron "github.com/eventmaster/core/internal/pkg/cron"
)

// ImportJobName identifies the scheduled catalog import.
const ImportJobName = "ticketmaster_import"

// registerCronJobs wires the scheduled background jobs.
func (a *App) registerCronJobs(ctx context.Context) error {
	cronLogger := a.logger.Named("cron")

	ownerID, err := auth.SystemUserID(ctx, a.db)
	if err != nil {
		return err
	}

	importer := newImporter(a, ownerID, cronLogger)

	a.sched.Register(pkgcron.Job{
		Name:        ImportJobName,
		Description: "import events from the Ticketmaster Discovery API",
		Interval:    time.Duration(a.cfg.Importer.IntervalHours) * time.Hour,
		RunOnStart:  a.cfg.Importer.RunOnStart,
		Fn: func(ctx context.Context) error {
			report, err := importer.Run(ctx)
			if err != nil {
				cronLogger.Error("import run failed", zap.Error(err))
				return err
			}
			a.metrics.ObserveImport(report.Created, report.Skipped, report.Failed)
			return nil
		},
	})
	return nil
}

func newImporter(a *App, ownerID string, log *zap.Logger) *event.Importer {
	staticDir := config.ResolveRuntimePath(a.cfg.Paths.Static, "public")
	return event.NewImporter(
		event.NewService(a.db),
		event.NewTicketmasterClient(
			a.cfg.Importer.BaseURL,
			a.cfg.Importer.APIKey,
			a.cfg.Importer.CountryCode,
			a.cfg.Importer.PageSize,
		),
		image.NewService(a.db, staticDir, log),
		participant.NewService(a.db),
		ownerID,
		log,
	)
}
