package queries

import (
	"context"
	"database/sql"

	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves one page of all orders.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for paginated order listings.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle returns the requested page together with the total order count.
// Rows are ordered by identifier for stable pagination.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) (OrderPageResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderPageResponse{}, err
	}

	var total int64
	if err := h.db.WithContext(ctx).Raw(`SELECT count(*) FROM orders`).Scan(&total).Error; err != nil {
		return OrderPageResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			ordered_at,
			delivery_agent,
			estimated_time_of_delivery
		FROM orders
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

// scanOrderSummaries reads order summary rows produced by the listing queries.
func scanOrderSummaries(rows *sql.Rows) ([]OrderSummary, error) {
	orders := make([]OrderSummary, 0)

	for rows.Next() {
		var id uuid.UUID
		var summary OrderSummary
		var agent sql.NullString
		var eta sql.NullTime

		if err := rows.Scan(&id, &summary.OrderedAt, &agent, &eta); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		summary.ID = orderID

		if agent.Valid {
			value := agent.String
			summary.DeliveryAgent = &value
		}
		if eta.Valid {
			value := eta.Time
			summary.EstimatedTimeOfDelivery = &value
		}

		orders = append(orders, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
