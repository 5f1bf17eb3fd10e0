package handler

import (
	"github.com/fogonlabs/comanda/internal/application/service"
	"github.com/fogonlabs/comanda/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PrinterHandler handles receipt printer HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus handles getting the printer connection status
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.printerService.GetStatus())
}

// TestPrint handles printing a test page
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	if err := h.printerService.TestPrint(); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Test page printed successfully", nil)
}

// KickDrawer handles opening the cash drawer without a sale
func (h *PrinterHandler) KickDrawer(c *gin.Context) {
	if err := h.printerService.KickDrawer(); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Drawer opened successfully", nil)
}

// PrintReceipt handles printing a customer receipt for an order
func (h *PrinterHandler) PrintReceipt(c *gin.Context) {
	var req struct {
		OrderID string `json:"order_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.printerService.PrintOrderReceipt(c.Request.Context(), orderID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", nil)
}
