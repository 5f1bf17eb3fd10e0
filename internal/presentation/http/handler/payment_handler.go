package handler

import (
	"github.com/fogonlabs/comanda/internal/application/service"
	"github.com/fogonlabs/comanda/internal/domain/enum"
	"github.com/fogonlabs/comanda/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles checkout HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
	printerService *service.PrinterService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService, printerService *service.PrinterService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, printerService: printerService}
}

// Reconcile handles applying a set of tenders to an open order. The order
// closes when the full balance is covered; a partial amount leaves it open.
func (h *PaymentHandler) Reconcile(c *gin.Context) {
	waiterID := GetWaiterID(c)
	if waiterID == nil {
		response.Unauthorized(c, "Waiter not authenticated")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req struct {
		Tenders []struct {
			Method enum.PaymentMethod `json:"method"`
			Amount float64            `json:"amount"`
		} `json:"tenders"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tenders := make([]service.Tender, 0, len(req.Tenders))
	for _, t := range req.Tenders {
		tenders = append(tenders, service.Tender{
			Method: t.Method,
			Amount: toCents(t.Amount),
		})
	}

	result, err := h.paymentService.Reconcile(c.Request.Context(), &service.ReconcileInput{
		OrderID:  orderID,
		WaiterID: *waiterID,
		Tenders:  tenders,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// Cash in hand means the drawer has to open; a dead printer must not
	// fail the sale
	if result.KickDrawer {
		_ = h.printerService.KickDrawer()
	}

	message := "Payment recorded, order still open"
	if result.Closed {
		message = "Payment recorded, order closed"
	}

	response.OK(c, message, gin.H{
		"order":      result.Order,
		"closed":     result.Closed,
		"change_due": float64(result.ChangeDue) / 100,
	})
}
