// Package jobs provides scheduled background tasks for the repair shop system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping.
//
// # Available Jobs
//
// 1. QuoteArchiveJob - Runs hourly to archive quotes whose ledgers have been
// fully drained by partial conversions
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(archiveDrainedQuotesHandler, logger)
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
// The archive job logs failures and carries on; the next run retries. An
// empty sweep is not an error and produces no log line.
package jobs
