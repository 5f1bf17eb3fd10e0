package handler

import (
	"github.com/fogonlabs/comanda/internal/application/service"
	"github.com/fogonlabs/comanda/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MenuHandler handles category and menu item HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// ListCategories handles listing categories with their items
func (h *MenuHandler) ListCategories(c *gin.Context) {
	categories, err := h.menuService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", categories)
}

// CreateCategory handles creating a category
func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var req struct {
		Name     string  `json:"name" binding:"required"`
		ImageURL *string `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.menuService.CreateCategory(c.Request.Context(), &service.CreateCategoryInput{
		Name:     req.Name,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created successfully", category)
}

// UpdateCategory handles updating a category
func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	var req struct {
		Name     *string `json:"name"`
		ImageURL *string `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.menuService.UpdateCategory(c.Request.Context(), &service.UpdateCategoryInput{
		ID:       id,
		Name:     req.Name,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category updated successfully", category)
}

// DeleteCategory handles deleting a category
func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.menuService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListItems handles listing menu items, optionally filtered by category
func (h *MenuHandler) ListItems(c *gin.Context) {
	var categoryID *uuid.UUID
	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		id, err := uuid.Parse(categoryIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid category ID")
			return
		}
		categoryID = &id
	}

	items, err := h.menuService.ListMenuItems(c.Request.Context(), categoryID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu items retrieved successfully", items)
}

// GetItem handles getting a single menu item
func (h *MenuHandler) GetItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	item, err := h.menuService.GetMenuItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item retrieved successfully", item)
}

// CreateItem handles creating a menu item
func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req struct {
		Name            string  `json:"name" binding:"required"`
		Price           float64 `json:"price"`
		CategoryID      string  `json:"category_id" binding:"required"`
		ImageURL        *string `json:"image_url"`
		IsStockTracked  bool    `json:"is_stock_tracked"`
		InventoryItemID *string `json:"inventory_item_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	input := &service.CreateMenuItemInput{
		Name:           req.Name,
		Price:          toCents(req.Price),
		CategoryID:     categoryID,
		ImageURL:       req.ImageURL,
		IsStockTracked: req.IsStockTracked,
	}
	if req.InventoryItemID != nil {
		inventoryItemID, err := uuid.Parse(*req.InventoryItemID)
		if err != nil {
			response.BadRequest(c, "Invalid inventory item ID")
			return
		}
		input.InventoryItemID = &inventoryItemID
	}

	item, err := h.menuService.CreateMenuItem(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Menu item created successfully", item)
}

// UpdateItem handles updating a menu item
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req struct {
		Name            *string  `json:"name"`
		Price           *float64 `json:"price"`
		CategoryID      *string  `json:"category_id"`
		ImageURL        *string  `json:"image_url"`
		IsStockTracked  *bool    `json:"is_stock_tracked"`
		InventoryItemID *string  `json:"inventory_item_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateMenuItemInput{
		ID:             id,
		Name:           req.Name,
		ImageURL:       req.ImageURL,
		IsStockTracked: req.IsStockTracked,
	}
	if req.Price != nil {
		price := toCents(*req.Price)
		input.Price = &price
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			response.BadRequest(c, "Invalid category ID")
			return
		}
		input.CategoryID = &categoryID
	}
	if req.InventoryItemID != nil {
		inventoryItemID, err := uuid.Parse(*req.InventoryItemID)
		if err != nil {
			response.BadRequest(c, "Invalid inventory item ID")
			return
		}
		input.InventoryItemID = &inventoryItemID
	}

	item, err := h.menuService.UpdateMenuItem(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item updated successfully", item)
}

// DeleteItem handles deleting a menu item
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	if err := h.menuService.DeleteMenuItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
