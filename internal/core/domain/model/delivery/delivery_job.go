// Package delivery contains the DeliveryJob value object: an offer pairing a
// delivery agent with an estimated time of delivery, used to fulfill exactly
// one order.
package delivery

import (
	"errors"
	"time"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrDeliveryJobIsNotConstructed is returned when a DeliveryJob was not created
// through the NewDeliveryJob constructor.
var ErrDeliveryJobIsNotConstructed = errors.New(
	"DeliveryJob must be created via NewDeliveryJob constructor",
)

// DeliveryJob is a value object representing an offer of delivery capacity.
// It is not persisted on its own; it is the input that mutates an order during
// the assignment transition.
type DeliveryJob struct {
	deliveryAgent           string
	estimatedTimeOfDelivery time.Time

	guard guard.ConstructorGuard
}

// NewDeliveryJob creates a delivery job offer. The delivery agent reference must
// be non-empty and the estimated time of delivery must be set.
func NewDeliveryJob(deliveryAgent string, estimatedTimeOfDelivery time.Time) (DeliveryJob, error) {
	if deliveryAgent == "" {
		return DeliveryJob{}, errs.NewValueIsRequiredError("deliveryAgent")
	}
	if estimatedTimeOfDelivery.IsZero() {
		return DeliveryJob{}, errs.NewValueIsRequiredError("estimatedTimeOfDelivery")
	}

	return DeliveryJob{
		deliveryAgent:           deliveryAgent,
		estimatedTimeOfDelivery: estimatedTimeOfDelivery,
		guard:                   guard.NewConstructorGuard(),
	}, nil
}

// DeliveryAgent returns the delivery agent reference.
func (j DeliveryJob) DeliveryAgent() string {
	return j.deliveryAgent
}

// EstimatedTimeOfDelivery returns the offered delivery estimate.
func (j DeliveryJob) EstimatedTimeOfDelivery() time.Time {
	return j.estimatedTimeOfDelivery
}

// Validate ensures the job was created through NewDeliveryJob.
func (j DeliveryJob) Validate() error {
	return j.guard.Validate(ErrDeliveryJobIsNotConstructed)
}
