// Package dto defines request and response structures for the API endpoints.
package dto

import (
	"time"

	"github.com/expire-tracker/backend/internal/application/usecase/dashboard"
)

// RecentProductResponse is one entry of the recently added list.
type RecentProductResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Category   string     `json:"category"`
	ExpiryDate *time.Time `json:"expiryDate"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// OverviewResponse is the response body for GET /dashboard/overview.
type OverviewResponse struct {
	TotalProducts   int                     `json:"totalProducts"`
	ExpiringSoon    int                     `json:"expiringSoon"`
	Expired         int                     `json:"expired"`
	FreshProducts   int                     `json:"freshProducts"`
	TotalCategories int                     `json:"totalCategories"`
	AddedThisMonth  int                     `json:"addedThisMonth"`
	TopCategories   []CategoryCountResponse `json:"topCategories"`
	RecentProducts  []RecentProductResponse `json:"recentProducts"`
}

// ToOverviewResponse converts the overview use case output to its response form.
func ToOverviewResponse(output *dashboard.GetOverviewOutput) OverviewResponse {
	recent := make([]RecentProductResponse, len(output.RecentProducts))
	for i, p := range output.RecentProducts {
		var expiry *time.Time
		if !p.ExpiryDate.IsZero() {
			e := p.ExpiryDate
			expiry = &e
		}
		recent[i] = RecentProductResponse{
			ID:         p.ID.String(),
			Name:       p.Name,
			Category:   p.Category,
			ExpiryDate: expiry,
			Status:     string(p.Status),
			CreatedAt:  p.CreatedAt,
		}
	}

	return OverviewResponse{
		TotalProducts:   output.TotalProducts,
		ExpiringSoon:    output.ExpiringSoon,
		Expired:         output.Expired,
		FreshProducts:   output.FreshProducts,
		TotalCategories: output.TotalCategories,
		AddedThisMonth:  output.AddedThisMonth,
		TopCategories:   ToCategoryCountResponses(output.TopCategories),
		RecentProducts:  recent,
	}
}
