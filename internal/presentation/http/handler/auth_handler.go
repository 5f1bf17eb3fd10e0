package handler

import (
	"github.com/fogonlabs/comanda/internal/application/service"
	"github.com/fogonlabs/comanda/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService   *service.AuthService
	waiterService *service.WaiterService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, waiterService *service.WaiterService) *AuthHandler {
	return &AuthHandler{authService: authService, waiterService: waiterService}
}

// Login handles waiter sign-in with name and PIN
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
		PIN  string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Name: req.Name,
		PIN:  req.PIN,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"waiter":        result.Waiter,
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
	})
}

// RefreshToken handles access token renewal
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed successfully", gin.H{
		"waiter":        result.Waiter,
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
	})
}

// GetProfile returns the signed-in waiter's account
func (h *AuthHandler) GetProfile(c *gin.Context) {
	waiterID := GetWaiterID(c)
	if waiterID == nil {
		response.Unauthorized(c, "Waiter not authenticated")
		return
	}

	waiter, err := h.waiterService.GetWaiter(c.Request.Context(), *waiterID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile retrieved successfully", waiter)
}

// ChangePIN handles a waiter changing their own PIN
func (h *AuthHandler) ChangePIN(c *gin.Context) {
	waiterID := GetWaiterID(c)
	if waiterID == nil {
		response.Unauthorized(c, "Waiter not authenticated")
		return
	}

	var req struct {
		CurrentPIN string `json:"current_pin" binding:"required"`
		NewPIN     string `json:"new_pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.authService.ChangePIN(c.Request.Context(), *waiterID, req.CurrentPIN, req.NewPIN); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "PIN changed successfully", nil)
}
