// Package http exposes the order service over REST. It translates requests
// into commands and queries, and core failures into status codes: precondition
// failures map to 400, missing orders to 404, and assignment conflicts to 409.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/delivery"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 20
)

// Server coordinates between HTTP handlers and the application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	assignOrderHandler commands.AssignOrderCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getAllOrdersHandler        queries.GetAllOrdersQueryHandler
	getUnassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getUnassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		assignOrderHandler:         assignOrderHandler,
		getOrderHandler:            getOrderHandler,
		getAllOrdersHandler:        getAllOrdersHandler,
		getUnassignedOrdersHandler: getUnassignedOrdersHandler,
	}
}

// RegisterRoutes mounts all service routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/unassigned", s.GetUnassignedOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/assign", s.AssignOrder)
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, reqItem := range req.Items {
		item, err := order.NewItem(reqItem.Product, reqItem.Quantity)
		if err != nil {
			return badRequest(ctx, "Invalid order item: "+err.Error())
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve order")
	}
	if found == nil {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}

	resp := OrderResponse{
		ID:                      found.ID.String(),
		OrderedAt:               found.OrderedAt,
		DeliveryAgent:           found.DeliveryAgent,
		EstimatedTimeOfDelivery: found.EstimatedTimeOfDelivery,
	}
	for _, item := range found.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			Product:  item.Product,
			Quantity: item.Quantity,
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetOrders handles GET /api/v1/orders - retrieves all orders, paginated.
func (s *Server) GetOrders(ctx echo.Context) error {
	page, err := pageSpecFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid page parameters: "+err.Error())
	}

	query, err := queries.NewGetAllOrdersQuery(page)
	if err != nil {
		return badRequest(ctx, "Invalid page parameters: "+err.Error())
	}

	result, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, pageToResponse(result))
}

// GetUnassignedOrders handles GET /api/v1/orders/unassigned - retrieves the
// orders still awaiting delivery assignment, paginated.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	page, err := pageSpecFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid page parameters: "+err.Error())
	}

	query, err := queries.NewGetUnassignedOrdersQuery(page)
	if err != nil {
		return badRequest(ctx, "Invalid page parameters: "+err.Error())
	}

	result, err := s.getUnassignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve unassigned orders")
	}

	return ctx.JSON(http.StatusOK, pageToResponse(result))
}

// AssignOrder handles POST /api/v1/orders/:id/assign - assigns a delivery job.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AssignOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	job, err := delivery.NewDeliveryJob(req.DeliveryAgent, req.EstimatedTimeOfDelivery)
	if err != nil {
		return badRequest(ctx, "Invalid delivery job: "+err.Error())
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, job)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	assigned, err := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderAlreadyAssigned):
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "Order is already assigned to a delivery agent",
			})
		case errors.Is(err, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		default:
			return internalError(ctx, "Failed to assign order")
		}
	}

	return ctx.JSON(http.StatusOK, orderToResponse(assigned))
}

func pageSpecFromRequest(ctx echo.Context) (kernel.PageSpec, error) {
	page := 0
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return kernel.PageSpec{}, err
		}
		page = parsed
	}

	size := defaultPageSize
	if raw := ctx.QueryParam("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return kernel.PageSpec{}, err
		}
		size = parsed
	}

	return kernel.NewPageSpec(page, size)
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:                      aggregate.ID().String(),
		OrderedAt:               aggregate.OrderedAt(),
		DeliveryAgent:           aggregate.DeliveryAgent(),
		EstimatedTimeOfDelivery: aggregate.EstimatedTimeOfDelivery(),
	}
	for _, item := range aggregate.Items() {
		resp.Items = append(resp.Items, OrderItemResponse{
			Product:  item.Product(),
			Quantity: item.Quantity(),
		})
	}
	return resp
}

func pageToResponse(result queries.OrderPageResponse) OrderPageResponse {
	resp := OrderPageResponse{
		Orders:     make([]OrderResponse, 0, len(result.Orders)),
		Page:       result.Page,
		Size:       result.Size,
		TotalCount: result.TotalCount,
	}
	for _, summary := range result.Orders {
		resp.Orders = append(resp.Orders, OrderResponse{
			ID:                      summary.ID.String(),
			OrderedAt:               summary.OrderedAt,
			DeliveryAgent:           summary.DeliveryAgent,
			EstimatedTimeOfDelivery: summary.EstimatedTimeOfDelivery,
		})
	}
	return resp
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
