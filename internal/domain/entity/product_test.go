package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestClassifyStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		expiryDate time.Time
		window     int
		expected   ProductStatus
	}{
		{
			name:       "expiry in the past is expired",
			expiryDate: now.AddDate(0, 0, -10),
			window:     30,
			expected:   ProductStatusExpired,
		},
		{
			name:       "expiry exactly now is expired",
			expiryDate: now,
			window:     30,
			expected:   ProductStatusExpired,
		},
		{
			name:       "expiry one second from now is expiring soon",
			expiryDate: now.Add(time.Second),
			window:     30,
			expected:   ProductStatusExpiringSoon,
		},
		{
			name:       "expiry exactly at window boundary is expiring soon",
			expiryDate: now.AddDate(0, 0, 30),
			window:     30,
			expected:   ProductStatusExpiringSoon,
		},
		{
			name:       "expiry one second past window boundary is fresh",
			expiryDate: now.AddDate(0, 0, 30).Add(time.Second),
			window:     30,
			expected:   ProductStatusFresh,
		},
		{
			name:       "expiry far in the future is fresh",
			expiryDate: now.AddDate(1, 0, 0),
			window:     30,
			expected:   ProductStatusFresh,
		},
		{
			name:       "narrow window reclassifies near expiry as fresh",
			expiryDate: now.AddDate(0, 0, 10),
			window:     7,
			expected:   ProductStatusFresh,
		},
		{
			name:       "wide window reclassifies distant expiry as expiring soon",
			expiryDate: now.AddDate(0, 0, 60),
			window:     90,
			expected:   ProductStatusExpiringSoon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyStatus(tt.expiryDate, now, tt.window)
			if got != tt.expected {
				t.Errorf("expected status %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestProduct_DaysToExpiry(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		expiryDate time.Time
		expected   int
	}{
		{
			name:       "whole days ahead",
			expiryDate: now.AddDate(0, 0, 5),
			expected:   5,
		},
		{
			name:       "partial day rounds up",
			expiryDate: now.Add(36 * time.Hour),
			expected:   2,
		},
		{
			name:       "less than a day rounds up to one",
			expiryDate: now.Add(time.Hour),
			expected:   1,
		},
		{
			name:       "expiry exactly now is zero",
			expiryDate: now,
			expected:   0,
		},
		{
			name:       "expired product is negative",
			expiryDate: now.AddDate(0, 0, -3),
			expected:   -3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{ExpiryDate: tt.expiryDate}
			got := p.DaysToExpiry(now)
			if got != tt.expected {
				t.Errorf("expected %d days, got %d", tt.expected, got)
			}
		})
	}
}

func TestNewProduct(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	categoryID := uuid.New()
	expiry := now.AddDate(0, 0, 10)

	p := NewProduct("Milk", "7891000100103", "Whole milk 1L", expiry, categoryID, decimal.NewFromFloat(4.99), now, 30)

	if p.ID == uuid.Nil {
		t.Error("expected a generated ID")
	}
	if p.Status != ProductStatusExpiringSoon {
		t.Errorf("expected status %s, got %s", ProductStatusExpiringSoon, p.Status)
	}
	if !p.CreatedAt.Equal(now) || !p.UpdatedAt.Equal(now) {
		t.Error("expected timestamps set to now")
	}
	if p.CategoryID != categoryID {
		t.Errorf("expected category %s, got %s", categoryID, p.CategoryID)
	}
}

func TestProductWithCategory_CategoryName(t *testing.T) {
	t.Run("returns category name when loaded", func(t *testing.T) {
		pwc := &ProductWithCategory{
			Product:  &Product{Name: "Milk"},
			Category: &Category{Name: "Dairy"},
		}
		if got := pwc.CategoryName(); got != "Dairy" {
			t.Errorf("expected Dairy, got %s", got)
		}
	})

	t.Run("falls back when category relation is missing", func(t *testing.T) {
		pwc := &ProductWithCategory{Product: &Product{Name: "Milk"}}
		if got := pwc.CategoryName(); got != "Uncategorized" {
			t.Errorf("expected Uncategorized, got %s", got)
		}
	})
}
