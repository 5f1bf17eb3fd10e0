package handler

import (
	"github.com/fogonlabs/comanda/internal/domain/enum"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetWaiterID extracts the waiter ID from the Gin context
func GetWaiterID(c *gin.Context) *uuid.UUID {
	waiterIDVal, exists := c.Get("waiter_id")
	if !exists {
		return nil
	}
	waiterID, ok := waiterIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &waiterID
}

// GetWaiterName extracts the waiter name from the Gin context
func GetWaiterName(c *gin.Context) string {
	name, exists := c.Get("waiter_name")
	if !exists {
		return ""
	}
	return name.(string)
}

// GetWaiterRole extracts the waiter role from the Gin context
func GetWaiterRole(c *gin.Context) enum.Role {
	role, exists := c.Get("waiter_role")
	if !exists {
		return ""
	}
	r, ok := role.(enum.Role)
	if !ok {
		return ""
	}
	return r
}

// IsManager checks if the signed-in waiter can perform manager actions
func IsManager(c *gin.Context) bool {
	return GetWaiterRole(c).CanManage()
}
