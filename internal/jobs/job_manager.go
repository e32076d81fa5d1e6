package jobs

import (
	"fmt"
	"log/slog"

	"orders/internal/core/application/usecases/commands"
)

// JobManager coordinates the scheduled jobs of the service behind a single
// start/stop interface.
type JobManager struct {
	outboxDispatcherJob *OutboxDispatcherJob
}

// NewJobManager creates a job manager wiring the command handlers into jobs.
func NewJobManager(
	dispatchOutboxHandler commands.DispatchOutboxCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		outboxDispatcherJob: NewOutboxDispatcherJob(dispatchOutboxHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxDispatcherJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox dispatcher job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs.
func (jm *JobManager) StopAll() {
	jm.outboxDispatcherJob.Stop()
}
