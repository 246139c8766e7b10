package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderTimeoutJob *OrderTimeoutJob
	outboxRelayJob  *OutboxRelayJob
}

// NewJobManager creates a job manager over already configured jobs.
func NewJobManager(orderTimeoutJob *OrderTimeoutJob, outboxRelayJob *OutboxRelayJob) *JobManager {
	return &JobManager{
		orderTimeoutJob: orderTimeoutJob,
		outboxRelayJob:  outboxRelayJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	if err := jm.orderTimeoutJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.outboxRelayJob.Stop()
		return fmt.Errorf("failed to start order timeout job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully. The sweep stops first so its
// last events still get relayed.
func (jm *JobManager) StopAll() {
	jm.orderTimeoutJob.Stop()
	jm.outboxRelayJob.Stop()
}
