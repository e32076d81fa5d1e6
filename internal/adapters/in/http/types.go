package http

import "time"

// NewOrderRequest is the body of POST /api/v1/orders.
type NewOrderRequest struct {
	Items []NewOrderItem `json:"items"`
}

// NewOrderItem is one requested order line.
type NewOrderItem struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// AssignOrderRequest is the body of POST /api/v1/orders/:id/assign.
type AssignOrderRequest struct {
	DeliveryAgent           string    `json:"deliveryAgent"`
	EstimatedTimeOfDelivery time.Time `json:"estimatedTimeOfDelivery"`
}

// OrderResponse is the JSON representation of one order.
type OrderResponse struct {
	ID                      string              `json:"id"`
	OrderedAt               time.Time           `json:"orderedAt"`
	Items                   []OrderItemResponse `json:"items,omitempty"`
	DeliveryAgent           *string             `json:"deliveryAgent,omitempty"`
	EstimatedTimeOfDelivery *time.Time          `json:"estimatedTimeOfDelivery,omitempty"`
}

// OrderItemResponse is one order line in a response.
type OrderItemResponse struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// OrderPageResponse is one page of orders plus page metadata.
type OrderPageResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Page       int             `json:"page"`
	Size       int             `json:"size"`
	TotalCount int64           `json:"totalCount"`
}

// Error is the JSON body returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
