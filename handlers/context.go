package handlers

import (
	"harvestworld/models"

	"github.com/gin-gonic/gin"
)

// currentUserID returns the authenticated user id, or 0 on public routes.
func currentUserID(c *gin.Context) uint {
	v, _ := c.Get("user_id")
	id, _ := v.(uint)
	return id
}

func currentRole(c *gin.Context) models.UserRole {
	v, _ := c.Get("role")
	s, _ := v.(string)
	return models.UserRole(s)
}
