package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUnassignedOrdersQueryHandler retrieves the orders with no delivery agent.
// The filter is a single SQL predicate, delivery_agent IS NULL; equivalent
// query-construction mechanisms exist, but this service deliberately exposes
// exactly one.
type GetUnassignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedOrdersQueryHandler creates a handler for unassigned-order queries.
func NewGetUnassignedOrdersQueryHandler(db *gorm.DB) GetUnassignedOrdersQueryHandler {
	return GetUnassignedOrdersQueryHandler{db: db}
}

// Handle returns the requested page of unassigned orders together with the
// total count of unassigned orders. Pagination semantics match the all-orders
// listing: ordered by identifier, limit/offset from the page spec.
func (h GetUnassignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedOrdersQuery,
) (OrderPageResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderPageResponse{}, err
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw(`SELECT count(*) FROM orders WHERE delivery_agent IS NULL`).
		Scan(&total).Error; err != nil {
		return OrderPageResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			ordered_at,
			delivery_agent,
			estimated_time_of_delivery
		FROM orders
		WHERE delivery_agent IS NULL
		ORDER BY id
		LIMIT ? OFFSET ?
	`, query.Page().Size(), query.Page().Offset()).Rows()
	if err != nil {
		return OrderPageResponse{}, err
	}
	defer rows.Close()

	orders, err := scanOrderSummaries(rows)
	if err != nil {
		return OrderPageResponse{}, err
	}

	return OrderPageResponse{
		Orders:     orders,
		Page:       query.Page().Page(),
		Size:       query.Page().Size(),
		TotalCount: total,
	}, nil
}
