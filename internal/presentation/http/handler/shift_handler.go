package handler

import (
	"strconv"

	"github.com/fogonlabs/comanda/internal/application/service"
	"github.com/fogonlabs/comanda/internal/domain/enum"
	"github.com/fogonlabs/comanda/internal/domain/repository"
	"github.com/fogonlabs/comanda/internal/presentation/http/dto/response"
	"github.com/fogonlabs/comanda/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShiftHandler handles shift and cash drawer HTTP requests
type ShiftHandler struct {
	shiftService *service.ShiftService
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService *service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// Open handles opening a drawer session for the signed-in waiter
func (h *ShiftHandler) Open(c *gin.Context) {
	waiterID := GetWaiterID(c)
	if waiterID == nil {
		response.Unauthorized(c, "Waiter not authenticated")
		return
	}

	var req struct {
		StartingBalance float64 `json:"starting_balance"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	shift, err := h.shiftService.OpenShift(c.Request.Context(), &service.OpenShiftInput{
		WaiterID:        *waiterID,
		WaiterName:      GetWaiterName(c),
		StartingBalance: toCents(req.StartingBalance),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Shift opened successfully", shift)
}

// Current handles getting the waiter's open shift
func (h *ShiftHandler) Current(c *gin.Context) {
	waiterID := GetWaiterID(c)
	if waiterID == nil {
		response.Unauthorized(c, "Waiter not authenticated")
		return
	}

	shift, err := h.shiftService.GetCurrentShift(c.Request.Context(), *waiterID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Current shift retrieved successfully", shift)
}

// Get handles getting a single shift by ID
func (h *ShiftHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid shift ID")
		return
	}

	shift, err := h.shiftService.GetShift(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shift retrieved successfully", shift)
}

// List handles listing shifts with filters
func (h *ShiftHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.ShiftFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		OpenOnly:   c.Query("open") == "true",
	}

	if waiterIDStr := c.Query("waiter_id"); waiterIDStr != "" {
		waiterID, err := uuid.Parse(waiterIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid waiter ID")
			return
		}
		params.WaiterID = &waiterID
	}

	result, err := h.shiftService.ListShifts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Shifts retrieved successfully", result)
}

// RecordMovement handles a manual cash in or cash out on the open shift
func (h *ShiftHandler) RecordMovement(c *gin.Context) {
	waiterID := GetWaiterID(c)
	if waiterID == nil {
		response.Unauthorized(c, "Waiter not authenticated")
		return
	}

	var req struct {
		Direction enum.MovementDirection `json:"direction"`
		Amount    float64                `json:"amount"`
		Reason    string                 `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	shift, err := h.shiftService.RecordCashMovement(c.Request.Context(), &service.CashMovementInput{
		WaiterID:  *waiterID,
		Direction: req.Direction,
		Amount:    toCents(req.Amount),
		Reason:    req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cash movement recorded successfully", shift)
}

// Close handles closing the waiter's open shift against a counted drawer
func (h *ShiftHandler) Close(c *gin.Context) {
	waiterID := GetWaiterID(c)
	if waiterID == nil {
		response.Unauthorized(c, "Waiter not authenticated")
		return
	}

	var req struct {
		ActualCash float64 `json:"actual_cash"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	shift, err := h.shiftService.CloseShift(c.Request.Context(), &service.CloseShiftInput{
		WaiterID:   *waiterID,
		ActorRole:  GetWaiterRole(c),
		ActualCash: toCents(req.ActualCash),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shift closed successfully", shift)
}
