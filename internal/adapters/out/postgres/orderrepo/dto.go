// Package orderrepo implements order persistence over GORM: the data transfer
// objects mapping the aggregate to the orders and order_items tables, and the
// repository with its optimistic-version write guard.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database representation of an order aggregate.
// The delivery_agent column is indexed for the unassigned-orders scan,
// and the version column backs the optimistic concurrency check.
type OrderDTO struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderedAt               time.Time
	DeliveryAgent           *string `gorm:"index"`
	EstimatedTimeOfDelivery *time.Time
	Version                 int
	Items                   []ItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one order line row.
type ItemDTO struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	Product  string
	Quantity int
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:  aggregate.ID().Bytes(),
			Product:  item.Product(),
			Quantity: item.Quantity(),
		})
	}

	return OrderDTO{
		ID:                      aggregate.ID().Bytes(),
		OrderedAt:               aggregate.OrderedAt(),
		DeliveryAgent:           aggregate.DeliveryAgent(),
		EstimatedTimeOfDelivery: aggregate.EstimatedTimeOfDelivery(),
		Version:                 aggregate.Version(),
		Items:                   items,
	}
}

// toDomain reconstructs an order aggregate from its database representation.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Product, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.OrderedAt,
		items,
		dto.DeliveryAgent,
		dto.EstimatedTimeOfDelivery,
		dto.Version,
	)
}
