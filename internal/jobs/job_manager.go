package jobs

import (
	"fmt"
	"log/slog"

	"verdant/internal/core/application/archive"
	"verdant/internal/core/application/store"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
// A nil recorder disables the archive flush job.
type JobManager struct {
	deliveryProgressJob *DeliveryProgressJob
	archiveFlushJob     *ArchiveFlushJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(st *store.Store, recorder *archive.Recorder, logger *slog.Logger) *JobManager {
	jm := &JobManager{
		deliveryProgressJob: NewDeliveryProgressJob(st, logger),
	}
	if recorder != nil {
		jm.archiveFlushJob = NewArchiveFlushJob(recorder, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryProgressJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery progress job: %w", err)
	}

	if jm.archiveFlushJob != nil {
		if err := jm.archiveFlushJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.deliveryProgressJob.Stop()
			return fmt.Errorf("failed to start archive flush job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.archiveFlushJob != nil {
		jm.archiveFlushJob.Stop()
	}
	jm.deliveryProgressJob.Stop()
}
