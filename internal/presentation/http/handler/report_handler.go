package handler

import (
	"strconv"
	"time"

	"github.com/fogonlabs/comanda/internal/application/service"
	"github.com/fogonlabs/comanda/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles takings report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetSalesReport handles building a takings report over a window.
// Defaults to the current day when no window is given.
func (h *ReportHandler) GetSalesReport(c *gin.Context) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.Add(24 * time.Hour)

	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			response.BadRequest(c, "Invalid from date")
			return
		}
		from = parsed
	}
	if toStr := c.Query("to"); toStr != "" {
		parsed, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			response.BadRequest(c, "Invalid to date")
			return
		}
		to = parsed
	}

	report, err := h.reportService.GetSalesReport(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales report retrieved successfully", report)
}

// GetDailySales handles the day-by-day takings series
func (h *ReportHandler) GetDailySales(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	series, err := h.reportService.GetDailySales(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily sales retrieved successfully", series)
}
