// Package dto defines request and response structures for the API endpoints.
package dto

import (
	"time"

	"github.com/expire-tracker/backend/internal/application/usecase/report"
)

// GenerateReportRequest is the request body for POST /reports/generate.
type GenerateReportRequest struct {
	ReportType    string  `json:"reportType" binding:"required"`
	Name          string  `json:"name"`
	CategoryID    *string `json:"categoryId"`
	Status        string  `json:"status"`
	StartDate     *string `json:"startDate"`
	EndDate       *string `json:"endDate"`
	SortBy        string  `json:"sortBy"`
	SortOrder     string  `json:"sortOrder"`
	IncludeCharts *bool   `json:"includeCharts"`
}

// SummaryOverviewResponse mirrors the report summary overview block.
type SummaryOverviewResponse struct {
	TotalProducts   int                     `json:"totalProducts"`
	ExpiredProducts int                     `json:"expiredProducts"`
	ExpiringSoon    int                     `json:"expiringSoon"`
	HealthyProducts int                     `json:"healthyProducts"`
	TopCategories   []CategoryCountResponse `json:"topCategories"`
	Warnings        []report.Warning        `json:"warnings"`
	Suggestions     []string                `json:"suggestions"`
}

// CategoryCountResponse is one entry of a category breakdown.
type CategoryCountResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// SummaryProductResponse is one row of the summary product listing.
type SummaryProductResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Category       string     `json:"category"`
	ExpiryDate     *time.Time `json:"expiryDate"`
	Status         string     `json:"status"`
	ReportCount    int        `json:"reportCount"`
	LastReportedAt time.Time  `json:"lastReportedAt"`
}

// SummaryResponse is the response body for GET /reports/summary.
type SummaryResponse struct {
	Overview SummaryOverviewResponse  `json:"overview"`
	Products []SummaryProductResponse `json:"products"`
}

// ToCategoryCountResponses converts breakdown entries to their response form.
func ToCategoryCountResponses(counts []report.CategoryCount) []CategoryCountResponse {
	responses := make([]CategoryCountResponse, len(counts))
	for i, c := range counts {
		responses[i] = CategoryCountResponse{Name: c.Name, Count: c.Count}
	}
	return responses
}

// ToSummaryResponse converts the summary use case output to its response form.
func ToSummaryResponse(output *report.GetSummaryOutput) SummaryResponse {
	products := make([]SummaryProductResponse, len(output.Products))
	for i, p := range output.Products {
		var expiry *time.Time
		if !p.ExpiryDate.IsZero() {
			e := p.ExpiryDate
			expiry = &e
		}
		products[i] = SummaryProductResponse{
			ID:             p.ID.String(),
			Name:           p.Name,
			Category:       p.Category,
			ExpiryDate:     expiry,
			Status:         string(p.Status),
			ReportCount:    p.ReportCount,
			LastReportedAt: p.LastReportedAt,
		}
	}

	warnings := output.Overview.Warnings
	if warnings == nil {
		warnings = []report.Warning{}
	}
	suggestions := output.Overview.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	return SummaryResponse{
		Overview: SummaryOverviewResponse{
			TotalProducts:   output.Overview.TotalProducts,
			ExpiredProducts: output.Overview.ExpiredProducts,
			ExpiringSoon:    output.Overview.ExpiringSoon,
			HealthyProducts: output.Overview.HealthyProducts,
			TopCategories:   ToCategoryCountResponses(output.Overview.TopCategories),
			Warnings:        warnings,
			Suggestions:     suggestions,
		},
		Products: products,
	}
}
