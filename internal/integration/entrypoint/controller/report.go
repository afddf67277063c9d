// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expire-tracker/backend/internal/application/usecase/report"
	domainerror "github.com/expire-tracker/backend/internal/domain/error"
	"github.com/expire-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expire-tracker/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles report endpoints.
type ReportController struct {
	summaryUseCase  *report.GetSummaryUseCase
	generateUseCase *report.GenerateUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	summaryUseCase *report.GetSummaryUseCase,
	generateUseCase *report.GenerateUseCase,
) *ReportController {
	return &ReportController{
		summaryUseCase:  summaryUseCase,
		generateUseCase: generateUseCase,
	}
}

// Summary handles GET /reports/summary requests.
func (c *ReportController) Summary(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), report.GetSummaryInput{
		CategoryScope: actor.CategoryScope(),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute report summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// Generate handles POST /reports/generate requests. The document is fully
// buffered by the use case, so any failure is reported as a structured JSON
// error before a single document byte reaches the client.
func (c *ReportController) Generate(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.GenerateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeReportTypeRequired),
		})
		return
	}

	filters, err := c.buildFilters(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), report.GenerateInput{
		Filters:       filters,
		CategoryScope: actor.CategoryScope(),
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, output.ContentType, output.Data)
}

// buildFilters converts the request body into validated-ready report filters.
func (c *ReportController) buildFilters(req dto.GenerateReportRequest) (report.Filters, error) {
	filters := report.Filters{
		Name:          req.Name,
		Status:        req.Status,
		SortBy:        req.SortBy,
		SortOrder:     req.SortOrder,
		ReportType:    report.ReportType(req.ReportType),
		IncludeCharts: true,
	}
	if req.IncludeCharts != nil {
		filters.IncludeCharts = *req.IncludeCharts
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return filters, errors.New("invalid categoryId format")
		}
		filters.CategoryID = &categoryID
	}

	if req.StartDate != nil {
		start, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return filters, errors.New("invalid startDate format, expected YYYY-MM-DD")
		}
		filters.DateRange.Start = &start
	}
	if req.EndDate != nil {
		end, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return filters, errors.New("invalid endDate format, expected YYYY-MM-DD")
		}
		filters.DateRange.End = &end
	}

	return filters, nil
}

// handleReportError maps report errors to HTTP responses. Validation errors
// use the common error shape; generation failures use the structured report
// failure body.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		if reportErr.IsValidationError() {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: reportErr.Message,
				Code:  string(reportErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ReportFailureResponse{
			Message:   "Failed to generate report",
			Error:     reportErr.Message,
			Timestamp: time.Now().UTC(),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ReportFailureResponse{
		Message:   "Failed to generate report",
		Error:     "An internal error occurred",
		Timestamp: time.Now().UTC(),
	})
}
