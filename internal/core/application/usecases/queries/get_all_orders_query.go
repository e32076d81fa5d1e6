package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves one page of all orders in the store's default
// ordering. A thin pass-through: no filtering, no business logic.
type GetAllOrdersQuery struct {
	page kernel.PageSpec

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a paginated listing query.
func NewGetAllOrdersQuery(page kernel.PageSpec) (GetAllOrdersQuery, error) {
	if err := page.Validate(); err != nil {
		return GetAllOrdersQuery{}, err
	}

	return GetAllOrdersQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Page returns the requested page specification.
func (q GetAllOrdersQuery) Page() kernel.PageSpec {
	return q.page
}

// OrderSummary is one order row in a paginated listing.
// DeliveryAgent and EstimatedTimeOfDelivery are nil while unassigned.
type OrderSummary struct {
	ID                      kernel.UUID
	OrderedAt               time.Time
	DeliveryAgent           *string
	EstimatedTimeOfDelivery *time.Time
}

// OrderPageResponse is one page of orders plus page metadata.
type OrderPageResponse struct {
	Orders     []OrderSummary
	Page       int
	Size       int
	TotalCount int64
}
