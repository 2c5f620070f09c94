// Package jobs provides scheduled background tasks for the fulfillment
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the service requires.
//
// # Available Jobs
//
// 1. OrderReconciliationJob - Runs every second to promote ready orders to
// done and notify the owning customers.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(completeReadyOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses the cron expression "* * * * * *", meaning it runs every
// second. This keeps the lag between an order turning ready and its
// completion at most one tick.
//
// # Error Handling
//
// Per-order failures (notification, version conflicts) are logged inside
// the sweep handler and never abort the pass; only a failure to list ready
// orders is logged here as a job failure.
package jobs
