// Package expiry contains the scheduled expiry check use case.
package expiry

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/domain/entity"
)

// RunCheckOutput reports how many products the check successfully
// transitioned, regardless of notification outcomes.
type RunCheckOutput struct {
	ExpiringCount int
	ExpiredCount  int
}

// RunCheckUseCase is the body of the daily expiry check batch job. It
// re-classifies products whose persisted status lags behind real time,
// persists the transitions, and notifies the managers of each product's
// category.
//
// Each product is an independent unit: a failed notification is logged and
// never rolls back the status write nor blocks the rest of the batch.
type RunCheckUseCase struct {
	productRepo       adapter.ProductRepository
	categoryRepo      adapter.CategoryRepository
	notifier          adapter.Notifier
	clock             adapter.Clock
	warningWindowDays int
}

// NewRunCheckUseCase creates a new RunCheckUseCase instance.
func NewRunCheckUseCase(
	productRepo adapter.ProductRepository,
	categoryRepo adapter.CategoryRepository,
	notifier adapter.Notifier,
	clock adapter.Clock,
	warningWindowDays int,
) *RunCheckUseCase {
	return &RunCheckUseCase{
		productRepo:       productRepo,
		categoryRepo:      categoryRepo,
		notifier:          notifier,
		clock:             clock,
		warningWindowDays: warningWindowDays,
	}
}

// Execute runs one expiry check pass.
//
// The two queries exclude products already carrying the target status, which
// makes an immediate re-run a no-op: nothing is re-notified until either time
// passes or data changes.
func (uc *RunCheckUseCase) Execute(ctx context.Context) (*RunCheckOutput, error) {
	now := uc.clock.Now()
	windowEnd := now.AddDate(0, 0, uc.warningWindowDays)

	expiring, err := uc.productRepo.FindExpiringWithin(ctx, now, windowEnd, entity.ProductStatusExpiringSoon)
	if err != nil {
		return nil, err
	}

	expired, err := uc.productRepo.FindExpiredBefore(ctx, now, entity.ProductStatusExpired)
	if err != nil {
		return nil, err
	}

	managers, err := uc.loadManagers(ctx)
	if err != nil {
		return nil, err
	}

	out := &RunCheckOutput{}

	for _, p := range expiring {
		if !uc.transition(ctx, p, entity.ProductStatusExpiringSoon) {
			continue
		}
		out.ExpiringCount++
		uc.notify(ctx, p, managers, adapter.ExpiryAlert{
			Product:      p.Product,
			CategoryName: p.CategoryName(),
			Type:         adapter.AlertTypeExpiring,
			DaysToExpiry: p.Product.DaysToExpiry(now),
		})
	}

	for _, p := range expired {
		if !uc.transition(ctx, p, entity.ProductStatusExpired) {
			continue
		}
		out.ExpiredCount++
		uc.notify(ctx, p, managers, adapter.ExpiryAlert{
			Product:      p.Product,
			CategoryName: p.CategoryName(),
			Type:         adapter.AlertTypeExpired,
		})
	}

	slog.Info("Expiry check completed",
		"expiring", out.ExpiringCount,
		"expired", out.ExpiredCount,
		"warning_window_days", uc.warningWindowDays,
	)

	return out, nil
}

// loadManagers builds the category -> managing users index for notification
// fan-out.
func (uc *RunCheckUseCase) loadManagers(ctx context.Context) (map[uuid.UUID][]*entity.User, error) {
	withManagers, err := uc.categoryRepo.FindWithManagers(ctx)
	if err != nil {
		return nil, err
	}

	managers := make(map[uuid.UUID][]*entity.User, len(withManagers))
	for _, cm := range withManagers {
		managers[cm.Category.ID] = cm.Managers
	}
	return managers, nil
}

// transition persists the recomputed status. A write failure is logged and
// skips the product without aborting the batch.
func (uc *RunCheckUseCase) transition(ctx context.Context, p *entity.ProductWithCategory, status entity.ProductStatus) bool {
	if err := uc.productRepo.UpdateStatus(ctx, p.Product.ID, status); err != nil {
		slog.Error("Failed to update product status",
			"product_id", p.Product.ID,
			"product_name", p.Product.Name,
			"status", status,
			"error", err,
		)
		return false
	}
	return true
}

// notify dispatches the alert to the category's managers. A category without
// managers is not an error; the status update stands on its own.
func (uc *RunCheckUseCase) notify(ctx context.Context, p *entity.ProductWithCategory, managers map[uuid.UUID][]*entity.User, alert adapter.ExpiryAlert) {
	users := managers[p.Product.CategoryID]
	if len(users) == 0 {
		return
	}

	if err := uc.notifier.Notify(ctx, alert, users); err != nil {
		slog.Error("Failed to dispatch expiry notification",
			"product_id", p.Product.ID,
			"product_name", p.Product.Name,
			"alert_type", alert.Type,
			"recipients", len(users),
			"error", err,
		)
	}
}
