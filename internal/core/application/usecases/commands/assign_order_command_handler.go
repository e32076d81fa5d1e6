package commands

import (
	"context"
	"errors"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// AssignOrderCommandHandler executes the one state transition of the core:
// pairing an unassigned order with a delivery job. The aggregate guard rejects
// an order whose delivery agent is already set; the repository's version check
// closes the race between two concurrent assigners that both read the order as
// unassigned — exactly one write lands, the other fails.
type AssignOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewAssignOrderCommandHandler creates a handler for assignment operations.
func NewAssignOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "assign_order_command_handler"),
	}
}

// Handle assigns the delivery job to the order and returns the updated order.
// Fails with order.ErrOrderAlreadyAssigned when the order already carries a
// delivery agent, whether that was observed directly or through a version
// conflict with a concurrent assignment. A missing order surfaces as an error
// unwrapping to errs.ErrObjectNotFound.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Assign(cmd.DeliveryJob()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		// The guard above already passed, so a version conflict means a
		// concurrent assignment won the race.
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			return nil, order.ErrOrderAlreadyAssigned
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "delivery job assigned to order",
		"delivery_agent", cmd.DeliveryJob().DeliveryAgent(),
		"order_id", aggregate.ID().String(),
	)

	return aggregate, nil
}
