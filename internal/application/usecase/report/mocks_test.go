package report

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/domain/entity"
)

// fakeProductRepo serves a fixed product collection and records the last
// filter it was queried with.
type fakeProductRepo struct {
	products   []*entity.ProductWithCategory
	lastFilter adapter.ProductFilter
	failFind   bool
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error { return nil }

func (r *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeProductRepo) FindWithFilter(ctx context.Context, filter adapter.ProductFilter) ([]*entity.ProductWithCategory, error) {
	r.lastFilter = filter
	if r.failFind {
		return nil, errors.New("query failed")
	}
	return r.products, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error { return nil }

func (r *fakeProductRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) error {
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeProductRepo) FindExpiringWithin(ctx context.Context, from, to time.Time, excludeStatus entity.ProductStatus) ([]*entity.ProductWithCategory, error) {
	return nil, nil
}

func (r *fakeProductRepo) FindExpiredBefore(ctx context.Context, now time.Time, excludeStatus entity.ProductStatus) ([]*entity.ProductWithCategory, error) {
	return nil, nil
}

// fakeRenderer returns canned bytes and records the render invocation.
type fakeRenderer struct {
	data       []byte
	failRender bool
	rendered   []*entity.ProductWithCategory
	filters    Filters
}

func (r *fakeRenderer) Render(products []*entity.ProductWithCategory, filters Filters, now time.Time) ([]byte, error) {
	r.rendered = products
	r.filters = filters
	if r.failRender {
		return nil, errors.New("render failed")
	}
	return r.data, nil
}

func (r *fakeRenderer) ContentType() string { return "application/pdf" }

func (r *fakeRenderer) FileExtension() string { return "pdf" }

// fixedClock returns a constant time.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }
