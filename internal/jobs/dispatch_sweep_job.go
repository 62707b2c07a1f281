package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DispatchSweepJob fills a free dispatch slot from the pending queue.
// Runs every second so a slot never stays idle while parcels wait, even if
// no API call happens to trigger a promotion.
type DispatchSweepJob struct {
	handler commands.DispatchNextCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDispatchSweepJob creates a new sweep job.
// Uses DispatchNextCommandHandler to promote the queue head every second.
func NewDispatchSweepJob(handler commands.DispatchNextCommandHandler, logger *slog.Logger) *DispatchSweepJob {
	return &DispatchSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispatch_sweep_job"),
	}
}

// Start begins the sweep job to run every second.
func (j *DispatchSweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewDispatchNextCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Dispatch sweep job failed to build command", "error", err)
			return
		}

		parcelID, promoted, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Dispatch sweep job failed", "error", err)
			return
		}

		// An occupied slot or an empty queue is the normal case; only an
		// actual promotion is worth a log line.
		if promoted {
			j.logger.InfoContext(ctx, "Dispatched pending delivery", "parcel_id", parcelID)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch sweep job started (running every second)")
	return nil
}

// Stop stops the sweep job.
func (j *DispatchSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch sweep job stopped")
}
