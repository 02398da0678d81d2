// Package jobs provides scheduled background tasks for the dispatch service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for dispatching.
//
// # Available Jobs
//
// 1. FallbackEvaluationJob - Runs every 30 seconds to move overdue tenant-assigned
// delivery orders to market delivery responsibility, one market at a time.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(evaluateFallbackHandler, getMarketsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - Markets without tenants are an expected condition and are not logged as errors
//   - A failing market does not stop the sweep for the remaining markets
//   - Failed job starts will stop any already running jobs
package jobs
