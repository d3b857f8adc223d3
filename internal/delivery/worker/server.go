// Package worker hosts the background backup scheduler.
package worker

import (
	"context"
	"log/slog"
	"time"

	"workforce/config"
	"workforce/internal/delivery"
	"workforce/internal/usecase"

	"github.com/go-co-op/gocron/v2"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// finalBackupTimeout bounds the best-effort backup attempted on shutdown.
const finalBackupTimeout = 30 * time.Second

type backupScheduler struct {
	cfg       *config.BackupConfig
	backup    usecase.BackupUsecase
	logger    *slog.Logger
	scheduler gocron.Scheduler
}

// SchedulerParams holds dependencies for the backup scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Backup usecase.BackupUsecase
}

// NewScheduler creates the backup scheduler delivery. An initial backup
// fires shortly after startup, then backups repeat on the configured
// interval; a final best-effort backup runs on graceful shutdown.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create scheduler")
	}

	d := &backupScheduler{
		cfg:       params.Config.Backup,
		backup:    params.Backup,
		logger:    params.Logger,
		scheduler: scheduler,
	}

	params.Lc.Append(fx.Hook{
		OnStop: d.stop,
	})

	return d, nil
}

func (d *backupScheduler) Serve(ctx context.Context) error {
	if d.cfg == nil || !d.cfg.Enabled {
		d.logger.Info("Backup scheduling disabled")

		return nil
	}

	// Failed backups are logged and retried on the next interval; they
	// never stop the scheduler.
	run := func() {
		if err := d.backup.Backup(ctx); err != nil {
			d.logger.Error("Scheduled backup failed", slog.Any("error", err))
		}
	}

	_, err := d.scheduler.NewJob(
		gocron.DurationJob(d.cfg.Interval),
		gocron.NewTask(run),
	)
	if err != nil {
		return errors.Wrap(err, "failed to schedule interval backup")
	}

	// One initial backup shortly after startup, once restore has had its
	// chance to run.
	_, err = d.scheduler.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(time.Now().Add(d.cfg.InitialDelay))),
		gocron.NewTask(run),
	)
	if err != nil {
		return errors.Wrap(err, "failed to schedule initial backup")
	}

	d.logger.Info("Backup scheduler started",
		slog.Duration("interval", d.cfg.Interval),
		slog.Duration("initialDelay", d.cfg.InitialDelay),
	)
	d.scheduler.Start()

	return nil
}

func (d *backupScheduler) stop(ctx context.Context) error {
	if d.cfg != nil && d.cfg.Enabled {
		backupCtx, cancel := context.WithTimeout(context.Background(), finalBackupTimeout)
		defer cancel()

		d.logger.Info("Running final backup before shutdown")
		if err := d.backup.Backup(backupCtx); err != nil {
			// Best effort only; shutdown proceeds regardless.
			d.logger.Error("Final backup failed", slog.Any("error", err))
		}
	}

	return errors.WithStack(d.scheduler.Shutdown())
}
