package commands

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a request to persist the current field values
// of an existing order. No business validation happens beyond aggregate
// construction: callers are responsible for invariant checks before issuing
// the update.
type UpdateOrderCommand struct {
	order *order.Order

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to persist the given order.
func NewUpdateOrderCommand(aggregate *order.Order) (UpdateOrderCommand, error) {
	if err := aggregate.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		order: aggregate,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// Order returns the aggregate to persist.
func (c UpdateOrderCommand) Order() *order.Order {
	return c.order
}
