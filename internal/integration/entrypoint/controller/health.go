// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct{}

// NewHealthController creates a new health controller instance.
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Check handles GET /health requests.
func (c *HealthController) Check(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "expire-tracker-api",
	})
}
