package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/ports"
)

// dispatchBatchSize bounds how many pending events one dispatch run handles.
const dispatchBatchSize = 100

// DispatchOutboxCommandHandler pushes committed-but-unpublished integration
// events to the broker. Together with the transactional outbox written during
// order creation, this gives at-least-once delivery of the order-created
// notification without ever blocking or failing the creating operation.
type DispatchOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewDispatchOutboxCommandHandler creates a handler for outbox dispatch runs.
func NewDispatchOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) DispatchOutboxCommandHandler {
	return DispatchOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "dispatch_outbox_command_handler"),
	}
}

// Handle publishes one batch of pending events. Messages that fail to publish
// stay unpublished and are retried on the next run; messages that reach the
// broker are marked published in one transaction at the end of the run.
func (h DispatchOutboxCommandHandler) Handle(ctx context.Context, cmd DispatchOutboxCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outboxRepo := uow.OutboxRepository()

	messages, err := outboxRepo.GetUnpublished(ctx, dispatchBatchSize)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return uow.Commit(ctx)
	}

	for _, message := range messages {
		if err = h.publisher.Publish(ctx, message.EventType, message.Payload); err != nil {
			h.logger.WarnContext(ctx, "event publish failed, will retry",
				"message_id", message.ID.String(), "event_type", message.EventType, "error", err)
			continue
		}

		if err = outboxRepo.MarkPublished(ctx, message.ID); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
