// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations of the delivery simulation.
//
// # Available Jobs
//
// 1. DeliveryProgressJob - advances the active order along its lifecycle at
// a fixed cadence, simulating fulfillment.
// 2. ArchiveFlushJob - flushes placed orders and status changes to the
// durable order archive.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(st, recorder, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Advancing a terminal or missing order is a silent no-op by design of the
// dispatcher, so the progress job never reports business errors. The flush
// job logs archive failures and retries the same work on the next tick.
package jobs
