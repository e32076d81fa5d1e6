package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler persists field edits on an existing order within
// a single unit of work. The assignment transition delegates here after its
// invariant check, and any other caller that has already validated the order
// may use it directly.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for generic order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the order's current field values and returns the persisted
// order. A concurrent modification surfaces as an error unwrapping to
// errs.ErrVersionIsInvalid.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	if err := uow.OrderRepository().Update(ctx, cmd.Order()); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return cmd.Order(), nil
}
