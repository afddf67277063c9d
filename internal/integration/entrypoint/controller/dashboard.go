// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expire-tracker/backend/internal/application/usecase/dashboard"
	"github.com/expire-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expire-tracker/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	overviewUseCase *dashboard.GetOverviewUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(overviewUseCase *dashboard.GetOverviewUseCase) *DashboardController {
	return &DashboardController{
		overviewUseCase: overviewUseCase,
	}
}

// Overview handles GET /dashboard/overview requests.
func (c *DashboardController) Overview(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), dashboard.GetOverviewInput{
		CategoryScope: actor.CategoryScope(),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute dashboard overview",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}
