// Package dashboard contains the dashboard overview use case.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/application/usecase/report"
	"github.com/expire-tracker/backend/internal/domain/entity"
)

// RecentProduct is one entry of the recently added list.
type RecentProduct struct {
	ID         uuid.UUID
	Name       string
	Category   string
	ExpiryDate time.Time
	Status     entity.ProductStatus
	CreatedAt  time.Time
}

// GetOverviewInput represents the input for the dashboard overview.
type GetOverviewInput struct {
	// CategoryScope restricts the overview to the given categories; nil for
	// admins.
	CategoryScope []uuid.UUID
}

// GetOverviewOutput represents the dashboard overview response.
type GetOverviewOutput struct {
	TotalProducts   int
	ExpiringSoon    int
	Expired         int
	FreshProducts   int
	TotalCategories int
	AddedThisMonth  int
	TopCategories   []report.CategoryCount
	RecentProducts  []RecentProduct
}

// GetOverviewUseCase computes the dashboard headline numbers.
type GetOverviewUseCase struct {
	productRepo       adapter.ProductRepository
	categoryRepo      adapter.CategoryRepository
	clock             adapter.Clock
	warningWindowDays int
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	productRepo adapter.ProductRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
	warningWindowDays int,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		productRepo:       productRepo,
		categoryRepo:      categoryRepo,
		clock:             clock,
		warningWindowDays: warningWindowDays,
	}
}

// Execute computes the overview from one scoped product snapshot.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	products, err := uc.productRepo.FindWithFilter(ctx, adapter.ProductFilter{
		CategoryScope: input.CategoryScope,
		SortBy:        "createdAt",
		SortOrder:     adapter.SortDesc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load products for overview: %w", err)
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories for overview: %w", err)
	}

	now := uc.clock.Now()
	snap := report.Aggregate(products, now, uc.warningWindowDays)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	addedThisMonth := 0
	for _, p := range products {
		if !p.Product.CreatedAt.Before(monthStart) {
			addedThisMonth++
		}
	}

	recent := make([]RecentProduct, 0, 5)
	for _, p := range products {
		if len(recent) == 5 {
			break
		}
		recent = append(recent, RecentProduct{
			ID:         p.Product.ID,
			Name:       p.Product.Name,
			Category:   p.CategoryName(),
			ExpiryDate: p.Product.ExpiryDate,
			Status:     p.Product.Status,
			CreatedAt:  p.Product.CreatedAt,
		})
	}

	return &GetOverviewOutput{
		TotalProducts:   snap.Total,
		ExpiringSoon:    snap.ExpiringSoon,
		Expired:         snap.Expired,
		FreshProducts:   snap.Fresh,
		TotalCategories: len(categories),
		AddedThisMonth:  addedThisMonth,
		TopCategories:   report.CategoryBreakdown(products, now, uc.warningWindowDays, 5),
		RecentProducts:  recent,
	}, nil
}
