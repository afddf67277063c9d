// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expire-tracker/backend/internal/domain/entity"
)

// AlertType distinguishes the two expiry notifications.
type AlertType string

const (
	AlertTypeExpiring AlertType = "expiring"
	AlertTypeExpired  AlertType = "expired"
)

// ExpiryAlert carries everything a notification about one product needs.
type ExpiryAlert struct {
	Product      *entity.Product
	CategoryName string
	Type         AlertType
	// DaysToExpiry is the exact number of days remaining. Only meaningful for
	// AlertTypeExpiring.
	DaysToExpiry int
}

// Notifier dispatches an expiry alert to the users managing the product's
// category. A call may fail; the expiry check catches and logs failures
// per product instead of propagating them.
type Notifier interface {
	Notify(ctx context.Context, alert ExpiryAlert, users []*entity.User) error
}
