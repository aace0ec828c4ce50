package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"verdant/internal/core/application/store"
)

// DeliveryProgressJob advances the active order along its lifecycle on a
// fixed cadence, simulating the dispensary and driver making progress.
type DeliveryProgressJob struct {
	store  *store.Store
	cron   *cron.Cron
	logger *slog.Logger
}

// NewDeliveryProgressJob creates a job advancing the active order every 20
// seconds.
func NewDeliveryProgressJob(st *store.Store, logger *slog.Logger) *DeliveryProgressJob {
	return &DeliveryProgressJob{
		store:  st,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "delivery_progress_job"),
	}
}

// Start begins the delivery progress job.
func (j *DeliveryProgressJob) Start() error {
	_, err := j.cron.AddFunc("*/20 * * * * *", func() {
		active, ok := store.ActiveOrder(j.store.State())
		if !ok || !active.IsActive() {
			return
		}

		j.store.AdvanceActiveOrderStatus()

		advanced, _ := store.ActiveOrder(j.store.State())
		j.logger.Info("advanced active order",
			"order_id", advanced.ID, "status", advanced.Status.String())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery progress job started (running every 20 seconds)")
	return nil
}

// Stop stops the delivery progress job.
func (j *DeliveryProgressJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery progress job stopped")
}
