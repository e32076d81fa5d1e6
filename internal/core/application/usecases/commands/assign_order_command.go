package commands

import (
	"errors"

	"orders/internal/core/domain/model/delivery"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrAssignOrderCommandIsNotConstructed = errors.New(
		"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
	)
)

// AssignOrderCommand represents an offer of delivery capacity for one order:
// the order identifier plus the delivery job (agent and estimated time of
// delivery) to pair it with.
type AssignOrderCommand struct {
	orderID kernel.UUID
	job     delivery.DeliveryJob

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign a delivery job to an order.
func NewAssignOrderCommand(orderID kernel.UUID, job delivery.DeliveryJob) (AssignOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignOrderCommand{}, err
	}
	if err := job.Validate(); err != nil {
		return AssignOrderCommand{}, err
	}

	return AssignOrderCommand{
		orderID: orderID,
		job:     job,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryJob returns the offered delivery job.
func (c AssignOrderCommand) DeliveryJob() delivery.DeliveryJob {
	return c.job
}
