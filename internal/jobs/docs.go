// Package jobs provides scheduled background tasks for the negotiation service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field form with seconds.
//
// # Available Jobs
//
// 1. OrderTimeoutJob - cancels negotiating orders whose interaction deadline has passed
// 2. OutboxRelayJob - publishes stored status-change events to Pub/Sub
//
// # Usage
//
//	jobManager := jobs.NewJobManager(orderTimeoutJob, outboxRelayJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("Failed to start jobs: ", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Replicas
//
// Every replica schedules both jobs. Each run first obtains a Redis lock through
// a Locker; a replica that finds the lock held skips the run.
//
// # Error Handling
//
// - The sweep logs per-order failures and continues with the next order
// - The relay marks a message failed when publishing fails; the store schedules the retry
// - Failed job starts will stop any already running jobs
package jobs
