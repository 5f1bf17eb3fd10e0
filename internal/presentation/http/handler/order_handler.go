package handler

import (
	"math"
	"strconv"
	"time"

	"github.com/fogonlabs/comanda/internal/application/service"
	"github.com/fogonlabs/comanda/internal/domain/enum"
	"github.com/fogonlabs/comanda/internal/domain/repository"
	"github.com/fogonlabs/comanda/internal/presentation/http/dto/response"
	"github.com/fogonlabs/comanda/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// toCents converts a money amount from the wire format (euros as a float)
// into cents
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService   *service.OrderService
	printerService *service.PrinterService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, printerService *service.PrinterService) *OrderHandler {
	return &OrderHandler{orderService: orderService, printerService: printerService}
}

// Create handles opening a new order on a table
func (h *OrderHandler) Create(c *gin.Context) {
	waiterID := GetWaiterID(c)
	if waiterID == nil {
		response.Unauthorized(c, "Waiter not authenticated")
		return
	}

	var req struct {
		TableID string `json:"table_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tableID, err := uuid.Parse(req.TableID)
	if err != nil {
		response.BadRequest(c, "Invalid table ID")
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		TableID:    tableID,
		WaiterID:   *waiterID,
		WaiterName: GetWaiterName(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Get handles getting a single order
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// List handles listing orders with filters
func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		SortBy:     c.DefaultQuery("sort_by", "created_at"),
		SortOrder:  c.DefaultQuery("sort_order", "desc"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		var status enum.OrderStatus
		switch statusStr {
		case "open":
			status = enum.OrderStatusOpen
		case "closed":
			status = enum.OrderStatusClosed
		case "cancelled":
			status = enum.OrderStatusCancelled
		default:
			response.BadRequest(c, "Invalid order status")
			return
		}
		params.Status = &status
	}
	if waiterIDStr := c.Query("waiter_id"); waiterIDStr != "" {
		waiterID, err := uuid.Parse(waiterIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid waiter ID")
			return
		}
		params.WaiterID = &waiterID
	}
	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		customerID, err := uuid.Parse(customerIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		params.CustomerID = &customerID
	}
	if tableStr := c.Query("table"); tableStr != "" {
		table, err := strconv.Atoi(tableStr)
		if err != nil {
			response.BadRequest(c, "Invalid table number")
			return
		}
		params.TableID = &table
	}
	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			response.BadRequest(c, "Invalid from date")
			return
		}
		params.StartDate = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			response.BadRequest(c, "Invalid to date")
			return
		}
		params.EndDate = &to
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// ListOpen handles listing all currently open orders
func (h *OrderHandler) ListOpen(c *gin.Context) {
	orders, err := h.orderService.ListOpenOrders(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Open orders retrieved successfully", orders)
}

// AddItem handles adding one unit of a menu item to an order
func (h *OrderHandler) AddItem(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req struct {
		MenuItemID string `json:"menu_item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	menuItemID, err := uuid.Parse(req.MenuItemID)
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	order, err := h.orderService.AddItem(c.Request.Context(), orderID, menuItemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added successfully", order)
}

// SetItemQuantity handles setting a line's quantity directly
func (h *OrderHandler) SetItemQuantity(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	menuItemID, err := uuid.Parse(c.Param("menu_item_id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.SetItemQuantity(c.Request.Context(), orderID, menuItemID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item quantity updated successfully", order)
}

// ApplyDiscount handles setting an order's discount
func (h *OrderHandler) ApplyDiscount(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req struct {
		Type  enum.DiscountType `json:"type"`
		Value float64           `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.ApplyDiscount(c.Request.Context(), &service.ApplyDiscountInput{
		OrderID: orderID,
		Type:    req.Type,
		Value:   req.Value,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount applied successfully", order)
}

// RemoveDiscount handles clearing an order's discount
func (h *OrderHandler) RemoveDiscount(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.RemoveDiscount(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount removed successfully", order)
}

// AssignCustomer handles attaching a customer to an order
func (h *OrderHandler) AssignCustomer(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	// A null or absent customer_id reverts the order to walk-in
	var req struct {
		CustomerID *string `json:"customer_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var customerID *uuid.UUID
	if req.CustomerID != nil {
		parsed, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		customerID = &parsed
	}

	order, err := h.orderService.AssignCustomer(c.Request.Context(), orderID, customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer assigned successfully", order)
}

// Cancel handles voiding an order. Manager only.
func (h *OrderHandler) Cancel(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.CancelOrder(c.Request.Context(), orderID, GetWaiterRole(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order cancelled successfully", order)
}

// KitchenTicket handles printing the new items on an order to the kitchen.
// The ticket carries only what was added since the last print.
func (h *OrderHandler) KitchenTicket(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, lines, err := h.orderService.KitchenTicket(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	printed := true
	if err := h.printerService.PrintKitchenTicket(c.Request.Context(), order, lines); err != nil {
		// The snapshot already advanced; report the lines so the ticket
		// can be rewritten by hand
		printed = false
	}

	response.OK(c, "Kitchen ticket sent successfully", gin.H{
		"order_id": order.ID,
		"lines":    lines,
		"printed":  printed,
	})
}
