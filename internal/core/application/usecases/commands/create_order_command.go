package commands

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new customer order.
// The line items are the only client-supplied attributes: the identifier and
// the creation timestamp are assigned server-side during handling.
type CreateOrderCommand struct {
	items []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// The precondition that an order has at least one line item is checked here,
// before any storage access; an empty item list fails with
// order.ErrOrderHasNoItems.
func NewCreateOrderCommand(items []order.Item) (CreateOrderCommand, error) {
	if len(items) == 0 {
		return CreateOrderCommand{}, order.ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return CreateOrderCommand{}, err
		}
	}

	return CreateOrderCommand{
		items: append([]order.Item(nil), items...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Items returns the requested order line items.
func (c CreateOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}
