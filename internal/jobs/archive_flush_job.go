package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"verdant/internal/core/application/archive"
)

// ArchiveFlushJob periodically flushes placed orders and their status
// changes to the durable order archive.
type ArchiveFlushJob struct {
	recorder *archive.Recorder
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewArchiveFlushJob creates a job flushing the archive every 30 seconds.
func NewArchiveFlushJob(recorder *archive.Recorder, logger *slog.Logger) *ArchiveFlushJob {
	return &ArchiveFlushJob{
		recorder: recorder,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "archive_flush_job"),
	}
}

// Start begins the archive flush job.
func (j *ArchiveFlushJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		if err := j.recorder.Flush(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Archive flush job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Archive flush job started (running every 30 seconds)")
	return nil
}

// Stop stops the archive flush job.
func (j *ArchiveFlushJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Archive flush job stopped")
}
