// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories, the unit of work, and the event
// publisher. These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate. The write is flushed within the
	// current unit of work: subsequent reads in the same transaction see it.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the current field values of an existing order.
	// The write is guarded by the aggregate's version: when a concurrent
	// transaction has already modified the row, Update fails with an error
	// unwrapping to errs.ErrVersionIsInvalid and changes nothing.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its line items by identifier.
	// A missing order yields an error unwrapping to errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
