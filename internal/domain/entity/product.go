// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the lifecycle state of a product derived from its
// expiry date.
type ProductStatus string

const (
	ProductStatusFresh        ProductStatus = "Fresh"
	ProductStatusExpiringSoon ProductStatus = "Expiring Soon"
	ProductStatusExpired      ProductStatus = "Expired"
)

// DefaultWarningWindowDays is the default number of days before expiry during
// which a product is classified ExpiringSoon.
const DefaultWarningWindowDays = 30

// ClassifyStatus derives a product's lifecycle state from its expiry date.
//
// The rule is a fixed day offset: expired when the expiry date is not after
// now, expiring soon when it falls within warningWindowDays of now, fresh
// otherwise. The function is pure; callers inject now so classification is
// testable without the wall clock.
func ClassifyStatus(expiryDate, now time.Time, warningWindowDays int) ProductStatus {
	if !expiryDate.After(now) {
		return ProductStatusExpired
	}
	if !expiryDate.After(now.AddDate(0, 0, warningWindowDays)) {
		return ProductStatusExpiringSoon
	}
	return ProductStatusFresh
}

// Product represents one inventory item in the ExpireTracker system.
//
// Status is a cached derived value, not an independent fact: every write that
// changes ExpiryDate must recompute it via ClassifyStatus, and the scheduled
// expiry check rewrites it for purely time-based transitions.
type Product struct {
	ID          uuid.UUID
	Name        string
	Barcode     string
	Description string
	ExpiryDate  time.Time
	Status      ProductStatus
	CategoryID  uuid.UUID
	Value       decimal.Decimal // Optional monetary value; zero when untracked
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct creates a new Product entity with its status classified as of now.
func NewProduct(name, barcode, description string, expiryDate time.Time, categoryID uuid.UUID, value decimal.Decimal, now time.Time, warningWindowDays int) *Product {
	return &Product{
		ID:          uuid.New(),
		Name:        name,
		Barcode:     barcode,
		Description: description,
		ExpiryDate:  expiryDate,
		Status:      ClassifyStatus(expiryDate, now, warningWindowDays),
		CategoryID:  categoryID,
		Value:       value,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// DaysToExpiry returns the whole number of days until the product expires,
// rounded up. Negative for expired products.
func (p *Product) DaysToExpiry(now time.Time) int {
	diff := p.ExpiryDate.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// ProductWithCategory pairs a product with its owning category.
type ProductWithCategory struct {
	Product  *Product
	Category *Category
}

// CategoryName returns the owning category's name, or "Uncategorized" when
// the category relation was not loaded.
func (p *ProductWithCategory) CategoryName() string {
	if p.Category == nil {
		return "Uncategorized"
	}
	return p.Category.Name
}
