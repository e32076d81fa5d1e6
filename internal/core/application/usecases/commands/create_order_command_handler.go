package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// CreateOrderCommandHandler handles order creation. It persists the order and
// its order-created event in one transaction, then attempts an inline publish
// to the broker. A publish failure is logged and left to the outbox dispatcher;
// it never rolls back the committed order.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "create_order_command_handler"),
	}
}

// Handle processes the order creation command and returns the persisted order
// with its newly assigned identifier and creation timestamp.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), cmd.Items())
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(ports.NewOrderCreatedEvent(newOrder))
	if err != nil {
		return nil, err
	}

	message := ports.OutboxMessage{
		ID:        kernel.NewUUID(),
		EventType: ports.OrderCreatedEventType,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.OutboxRepository().Add(ctx, message); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order created", "order_id", newOrder.ID().String())
	h.publishCreatedEvent(ctx, message)

	return newOrder, nil
}

// publishCreatedEvent pushes the committed event to the broker right away.
// On failure the outbox row stays unpublished and the dispatcher job retries.
func (h CreateOrderCommandHandler) publishCreatedEvent(ctx context.Context, message ports.OutboxMessage) {
	if err := h.publisher.Publish(ctx, message.EventType, message.Payload); err != nil {
		h.logger.WarnContext(ctx, "order created event publish failed, left for dispatcher",
			"message_id", message.ID.String(), "error", err)
		return
	}

	if err := h.uowFactory.Create().OutboxRepository().MarkPublished(ctx, message.ID); err != nil {
		// The dispatcher may re-publish the event; delivery is at-least-once.
		h.logger.WarnContext(ctx, "failed to mark order created event as published",
			"message_id", message.ID.String(), "error", err)
	}
}
