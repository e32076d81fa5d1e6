package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrGetUnassignedOrdersQueryIsNotConstructed = errors.New(
		"GetUnassignedOrdersQuery must be created via NewGetUnassignedOrdersQuery constructor",
	)
)

// GetUnassignedOrdersQuery retrieves one page of orders still awaiting
// delivery assignment: exactly those whose delivery agent is absent.
type GetUnassignedOrdersQuery struct {
	page kernel.PageSpec

	guard guard.ConstructorGuard
}

// NewGetUnassignedOrdersQuery creates a paginated unassigned-orders query.
func NewGetUnassignedOrdersQuery(page kernel.PageSpec) (GetUnassignedOrdersQuery, error) {
	if err := page.Validate(); err != nil {
		return GetUnassignedOrdersQuery{}, err
	}

	return GetUnassignedOrdersQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedOrdersQueryIsNotConstructed)
}

// Page returns the requested page specification.
func (q GetUnassignedOrdersQuery) Page() kernel.PageSpec {
	return q.page
}
