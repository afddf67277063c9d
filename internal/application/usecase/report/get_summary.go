package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/domain/entity"
)

// Warning is one attention item on the report summary surface.
type Warning struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// SummaryOverview aggregates the headline numbers of the summary surface.
type SummaryOverview struct {
	TotalProducts   int
	ExpiredProducts int
	ExpiringSoon    int
	HealthyProducts int
	TopCategories   []CategoryCount
	Warnings        []Warning
	Suggestions     []string
}

// SummaryProduct is one row of the summary surface's product listing.
type SummaryProduct struct {
	ID             uuid.UUID
	Name           string
	Category       string
	ExpiryDate     time.Time
	Status         entity.ProductStatus
	ReportCount    int
	LastReportedAt time.Time
}

// GetSummaryInput represents the input for the report summary surface.
type GetSummaryInput struct {
	// CategoryScope restricts the summary to the given categories; nil for
	// admins.
	CategoryScope []uuid.UUID
}

// GetSummaryOutput represents the report summary surface response.
type GetSummaryOutput struct {
	Overview SummaryOverview
	Products []SummaryProduct
}

// GetSummaryUseCase computes the dashboard-style report summary.
type GetSummaryUseCase struct {
	productRepo       adapter.ProductRepository
	clock             adapter.Clock
	warningWindowDays int
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(productRepo adapter.ProductRepository, clock adapter.Clock, warningWindowDays int) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		productRepo:       productRepo,
		clock:             clock,
		warningWindowDays: warningWindowDays,
	}
}

// Execute fetches the scoped products sorted by expiry date and derives the
// overview statistics, warnings, and suggestions.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	products, err := uc.productRepo.FindWithFilter(ctx, adapter.ProductFilter{
		CategoryScope: input.CategoryScope,
		SortBy:        "expiryDate",
		SortOrder:     adapter.SortAsc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load products for summary: %w", err)
	}

	now := uc.clock.Now()
	snap := Aggregate(products, now, uc.warningWindowDays)

	var warnings []Warning
	if snap.Expired > 0 {
		warnings = append(warnings, Warning{
			Type:    "critical",
			Message: fmt.Sprintf("%d products have expired!", snap.Expired),
		})
	}
	if snap.ExpiringSoon > 0 {
		warnings = append(warnings, Warning{
			Type:    "warning",
			Message: fmt.Sprintf("%d products expiring soon.", snap.ExpiringSoon),
		})
	}

	rows := make([]SummaryProduct, 0, len(products))
	for _, p := range products {
		rows = append(rows, SummaryProduct{
			ID:             p.Product.ID,
			Name:           p.Product.Name,
			Category:       p.CategoryName(),
			ExpiryDate:     p.Product.ExpiryDate,
			Status:         p.Product.Status,
			ReportCount:    0,
			LastReportedAt: p.Product.UpdatedAt,
		})
	}

	return &GetSummaryOutput{
		Overview: SummaryOverview{
			TotalProducts:   snap.Total,
			ExpiredProducts: snap.Expired,
			ExpiringSoon:    snap.ExpiringSoon,
			HealthyProducts: snap.Fresh,
			TopCategories:   CategoryBreakdown(products, now, uc.warningWindowDays, 5),
			Warnings:        warnings,
			Suggestions:     Suggestions(snap),
		},
		Products: rows,
	}, nil
}
