package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OutboxDispatcherJob periodically re-publishes committed integration events
// that have not reached the broker yet. Runs every second, giving prompt
// at-least-once delivery even when the inline publish after order creation
// failed.
type OutboxDispatcherJob struct {
	handler commands.DispatchOutboxCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOutboxDispatcherJob creates the dispatcher job around the given handler.
func NewOutboxDispatcherJob(handler commands.DispatchOutboxCommandHandler, logger *slog.Logger) *OutboxDispatcherJob {
	return &OutboxDispatcherJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "outbox_dispatcher_job"),
	}
}

// Start schedules the dispatcher to run every second.
func (j *OutboxDispatcherJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchOutboxCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "outbox dispatch run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("outbox dispatcher job started")
	return nil
}

// Stop halts the schedule and waits for a running dispatch to finish.
func (j *OutboxDispatcherJob) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	j.logger.Info("outbox dispatcher job stopped")
}
