package handler

import (
	"github.com/fogonlabs/comanda/internal/application/service"
	"github.com/fogonlabs/comanda/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InventoryHandler handles stock-related HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// List handles listing inventory items
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.inventoryService.ListInventory(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory retrieved successfully", items)
}

// ListLowStock handles listing items running low
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	items, err := h.inventoryService.ListLowStock(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock items retrieved successfully", items)
}

// Get handles getting a single inventory item
func (h *InventoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid inventory item ID")
		return
	}

	item, err := h.inventoryService.GetInventoryItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item retrieved successfully", item)
}

// Create handles creating an inventory item
func (h *InventoryHandler) Create(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Quantity int    `json:"quantity"`
		Unit     string `json:"unit"`
		LowStock int    `json:"low_stock"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.inventoryService.CreateInventoryItem(c.Request.Context(), &service.CreateInventoryItemInput{
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		LowStock: req.LowStock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Inventory item created successfully", item)
}

// Update handles updating an inventory item's descriptive fields
func (h *InventoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid inventory item ID")
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Unit     *string `json:"unit"`
		LowStock *int    `json:"low_stock"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.inventoryService.UpdateInventoryItem(c.Request.Context(), &service.UpdateInventoryItemInput{
		ID:       id,
		Name:     req.Name,
		Unit:     req.Unit,
		LowStock: req.LowStock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item updated successfully", item)
}

// Adjust handles a manual stock correction
func (h *InventoryHandler) Adjust(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid inventory item ID")
		return
	}

	var req struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.inventoryService.AdjustStock(c.Request.Context(), id, req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock adjusted successfully", item)
}

// Delete handles deleting an inventory item
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid inventory item ID")
		return
	}

	if err := h.inventoryService.DeleteInventoryItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
