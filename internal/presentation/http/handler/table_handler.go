package handler

import (
	"github.com/fogonlabs/comanda/internal/application/service"
	"github.com/fogonlabs/comanda/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TableHandler handles floor plan HTTP requests
type TableHandler struct {
	tableService *service.TableService
}

// NewTableHandler creates a new table handler
func NewTableHandler(tableService *service.TableService) *TableHandler {
	return &TableHandler{tableService: tableService}
}

// ListAreas handles listing floor areas with their tables
func (h *TableHandler) ListAreas(c *gin.Context) {
	areas, err := h.tableService.ListAreas(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Areas retrieved successfully", areas)
}

// CreateArea handles creating a floor area
func (h *TableHandler) CreateArea(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Position int    `json:"position"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	area, err := h.tableService.CreateArea(c.Request.Context(), &service.CreateAreaInput{
		Name:     req.Name,
		Position: req.Position,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Area created successfully", area)
}

// UpdateArea handles updating a floor area
func (h *TableHandler) UpdateArea(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid area ID")
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Position *int    `json:"position"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	area, err := h.tableService.UpdateArea(c.Request.Context(), &service.UpdateAreaInput{
		ID:       id,
		Name:     req.Name,
		Position: req.Position,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Area updated successfully", area)
}

// DeleteArea handles deleting a floor area
func (h *TableHandler) DeleteArea(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid area ID")
		return
	}

	if err := h.tableService.DeleteArea(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// CreateTable handles adding a table to the floor plan
func (h *TableHandler) CreateTable(c *gin.Context) {
	var req struct {
		Number int     `json:"number" binding:"required"`
		AreaID string  `json:"area_id" binding:"required"`
		Seats  int     `json:"seats"`
		X      float64 `json:"x"`
		Y      float64 `json:"y"`
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
		Shape  string  `json:"shape"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	areaID, err := uuid.Parse(req.AreaID)
	if err != nil {
		response.BadRequest(c, "Invalid area ID")
		return
	}

	table, err := h.tableService.CreateTable(c.Request.Context(), &service.CreateTableInput{
		Number: req.Number,
		AreaID: areaID,
		Seats:  req.Seats,
		X:      req.X,
		Y:      req.Y,
		Width:  req.Width,
		Height: req.Height,
		Shape:  req.Shape,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Table created successfully", table)
}

// UpdateTable handles moving or reshaping a table
func (h *TableHandler) UpdateTable(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid table ID")
		return
	}

	var req struct {
		AreaID *string  `json:"area_id"`
		Seats  *int     `json:"seats"`
		X      *float64 `json:"x"`
		Y      *float64 `json:"y"`
		Width  *float64 `json:"width"`
		Height *float64 `json:"height"`
		Shape  *string  `json:"shape"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateTableInput{
		ID:     id,
		Seats:  req.Seats,
		X:      req.X,
		Y:      req.Y,
		Width:  req.Width,
		Height: req.Height,
		Shape:  req.Shape,
	}
	if req.AreaID != nil {
		areaID, err := uuid.Parse(*req.AreaID)
		if err != nil {
			response.BadRequest(c, "Invalid area ID")
			return
		}
		input.AreaID = &areaID
	}

	table, err := h.tableService.UpdateTable(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Table updated successfully", table)
}

// DeleteTable handles removing a table from the floor plan
func (h *TableHandler) DeleteTable(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid table ID")
		return
	}

	if err := h.tableService.DeleteTable(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
