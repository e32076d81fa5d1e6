package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/delivery"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoItems is returned when an order is created without line items.
	// This is a client precondition failure, raised before any storage access.
	ErrOrderHasNoItems = errs.NewValueIsRequiredErrorWithCause(
		"order items",
		errors.New("order has no items"),
	)

	// ErrOrderAlreadyAssigned is returned when a delivery job is offered to an
	// order whose delivery agent is already set. Assignment is write-once.
	ErrOrderAlreadyAssigned = errors.New("order is already assigned to a delivery agent")
)

// Order is the aggregate root for a customer order. It manages the lifecycle
// from creation through delivery assignment.
//
// Invariants:
//   - an order carries at least one line item from the moment it is created
//   - orderedAt is stamped once, at creation, and never changes
//   - the delivery agent transitions from absent to present exactly once;
//     a second assignment fails with ErrOrderAlreadyAssigned
//
// Private fields keep the invariants enforceable: mutation happens only
// through Assign, and construction only through NewOrder/RestoreOrder.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderedAt is the server-side creation timestamp
	orderedAt time.Time

	// items is the non-empty ordered sequence of line items
	items []Item

	// deliveryAgent is the assigned agent reference (nil while unassigned)
	deliveryAgent *string

	// estimatedTimeOfDelivery is set together with the delivery agent
	estimatedTimeOfDelivery *time.Time

	// version backs the store's optimistic concurrency check
	version int

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new unassigned Order and stamps orderedAt with the current
// server time. This constructor is the only writer of the creation timestamp.
//
// Returns ErrOrderHasNoItems when items is empty, or the first item validation
// failure when a line item was not properly constructed.
func NewOrder(id kernel.UUID, items []Item) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		orderedAt:     time.Now().UTC(),
		items:         append([]Item(nil), items...),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence. The stored orderedAt is
// carried over untouched; the delivery agent and estimate are optional and must
// be both present or both absent.
func RestoreOrder(
	id kernel.UUID,
	orderedAt time.Time,
	items []Item,
	deliveryAgent *string,
	estimatedTimeOfDelivery *time.Time,
	version int,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if orderedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("orderedAt")
	}
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if (deliveryAgent == nil) != (estimatedTimeOfDelivery == nil) {
		return nil, errs.NewValueIsInvalidError("delivery assignment is incomplete")
	}
	if deliveryAgent != nil && *deliveryAgent == "" {
		return nil, errs.NewValueIsRequiredError("deliveryAgent")
	}
	if version < 0 {
		return nil, errs.NewValueIsInvalidError("version")
	}

	return &Order{
		id:                      id,
		orderedAt:               orderedAt,
		items:                   append([]Item(nil), items...),
		deliveryAgent:           deliveryAgent,
		estimatedTimeOfDelivery: estimatedTimeOfDelivery,
		version:                 version,
		isConstructed:           true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderedAt returns the server-side creation timestamp.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// DeliveryAgent returns the assigned delivery agent reference.
// Returns nil while the order is unassigned.
func (o *Order) DeliveryAgent() *string {
	return o.deliveryAgent
}

// EstimatedTimeOfDelivery returns the delivery estimate set at assignment.
// Returns nil while the order is unassigned.
func (o *Order) EstimatedTimeOfDelivery() *time.Time {
	return o.estimatedTimeOfDelivery
}

// IsAssigned reports whether a delivery agent has been assigned.
func (o *Order) IsAssigned() bool {
	return o.deliveryAgent != nil
}

// Version returns the aggregate version used for optimistic locking.
func (o *Order) Version() int {
	return o.version
}

// Assign executes the one state transition of the aggregate: Unassigned to
// Assigned. It sets the delivery agent and the estimated time of delivery from
// the job. The transition is terminal; offering a job to an already assigned
// order fails with ErrOrderAlreadyAssigned and leaves the order unchanged.
//
// The in-memory guard alone does not close the race between two concurrent
// assigners on the same order; the store's version check does (see the
// repository Update contract).
func (o *Order) Assign(job delivery.DeliveryJob) error {
	if err := job.Validate(); err != nil {
		return err
	}
	if o.deliveryAgent != nil {
		return ErrOrderAlreadyAssigned
	}

	agent := job.DeliveryAgent()
	eta := job.EstimatedTimeOfDelivery()
	o.deliveryAgent = &agent
	o.estimatedTimeOfDelivery = &eta
	return nil
}
