// Package queries contains the read side of the CQRS split. Query handlers
// read the database directly with raw SQL and return thin response models;
// they never mutate state.
package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order by its identifier.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier to look up.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse carries one order with its line items.
// DeliveryAgent and EstimatedTimeOfDelivery are nil while unassigned.
type GetOrderQueryResponse struct {
	ID                      kernel.UUID
	OrderedAt               time.Time
	Items                   []OrderItemResponse
	DeliveryAgent           *string
	EstimatedTimeOfDelivery *time.Time
}

// OrderItemResponse is one order line in a query response.
type OrderItemResponse struct {
	Product  string
	Quantity int
}
