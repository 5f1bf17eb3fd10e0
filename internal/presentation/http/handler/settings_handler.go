package handler

import (
	"github.com/fogonlabs/comanda/internal/application/service"
	"github.com/fogonlabs/comanda/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles restaurant settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings handles getting the restaurant settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateSettings handles updating the restaurant settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req struct {
		Name             *string  `json:"name"`
		Address          *string  `json:"address"`
		Phone            *string  `json:"phone"`
		TaxID            *string  `json:"tax_id"`
		Currency         *string  `json:"currency"`
		TaxRate          *float64 `json:"tax_rate"`
		TaxModel         *string  `json:"tax_model"`
		ReceiptFooter    *string  `json:"receipt_footer"`
		KitchenHeader    *string  `json:"kitchen_header"`
		KickDrawerOnCash *bool    `json:"kick_drawer_on_cash"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		Name:             req.Name,
		Address:          req.Address,
		Phone:            req.Phone,
		TaxID:            req.TaxID,
		Currency:         req.Currency,
		TaxRate:          req.TaxRate,
		TaxModel:         req.TaxModel,
		ReceiptFooter:    req.ReceiptFooter,
		KitchenHeader:    req.KitchenHeader,
		KickDrawerOnCash: req.KickDrawerOnCash,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
