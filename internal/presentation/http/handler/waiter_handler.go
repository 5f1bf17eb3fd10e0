package handler

import (
	"github.com/fogonlabs/comanda/internal/application/service"
	"github.com/fogonlabs/comanda/internal/domain/enum"
	"github.com/fogonlabs/comanda/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WaiterHandler handles staff account HTTP requests
type WaiterHandler struct {
	waiterService *service.WaiterService
}

// NewWaiterHandler creates a new waiter handler
func NewWaiterHandler(waiterService *service.WaiterService) *WaiterHandler {
	return &WaiterHandler{waiterService: waiterService}
}

// List handles listing staff accounts
func (h *WaiterHandler) List(c *gin.Context) {
	waiters, err := h.waiterService.ListWaiters(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Waiters retrieved successfully", waiters)
}

// Get handles getting a single staff account
func (h *WaiterHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid waiter ID")
		return
	}

	waiter, err := h.waiterService.GetWaiter(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Waiter retrieved successfully", waiter)
}

// Create handles creating a staff account
func (h *WaiterHandler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
		PIN  string `json:"pin" binding:"required"`
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	waiter, err := h.waiterService.CreateWaiter(c.Request.Context(), &service.CreateWaiterInput{
		Name: req.Name,
		PIN:  req.PIN,
		Role: enum.Role(req.Role),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Waiter created successfully", waiter)
}

// Update handles updating a staff account
func (h *WaiterHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid waiter ID")
		return
	}

	var req struct {
		Name   *string `json:"name"`
		Role   *string `json:"role"`
		Active *bool   `json:"active"`
		PIN    *string `json:"pin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateWaiterInput{
		ID:     id,
		Name:   req.Name,
		Active: req.Active,
		PIN:    req.PIN,
	}
	if req.Role != nil {
		role := enum.Role(*req.Role)
		input.Role = &role
	}

	waiter, err := h.waiterService.UpdateWaiter(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Waiter updated successfully", waiter)
}

// Delete handles deactivating a staff account
func (h *WaiterHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid waiter ID")
		return
	}

	if err := h.waiterService.DeleteWaiter(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
