package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
)

// OrderCreatedEventType identifies the event published after an order commits.
const OrderCreatedEventType = "order.created"

// OrderCreatedEvent is the integration event carrying a newly persisted order,
// including its assigned identifier and creation timestamp.
type OrderCreatedEvent struct {
	OrderID   string                  `json:"orderId"`
	OrderedAt time.Time               `json:"orderedAt"`
	Items     []OrderCreatedEventItem `json:"items"`
}

// OrderCreatedEventItem is one order line within an OrderCreatedEvent.
type OrderCreatedEventItem struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// NewOrderCreatedEvent builds the integration event for a persisted order.
func NewOrderCreatedEvent(aggregate *order.Order) OrderCreatedEvent {
	items := make([]OrderCreatedEventItem, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderCreatedEventItem{
			Product:  item.Product(),
			Quantity: item.Quantity(),
		})
	}

	return OrderCreatedEvent{
		OrderID:   aggregate.ID().String(),
		OrderedAt: aggregate.OrderedAt(),
		Items:     items,
	}
}

// OrderEventPublisher delivers integration events to the message broker.
// Delivery is best-effort from the caller's perspective: a publish failure
// never affects the committed state change, and unpublished events are
// retried by the outbox dispatcher.
type OrderEventPublisher interface {
	Publish(ctx context.Context, eventType string, payload []byte) error
}
