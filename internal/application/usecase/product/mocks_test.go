package product

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/domain/entity"
	domainerror "github.com/expire-tracker/backend/internal/domain/error"
)

// memProductRepo is an in-memory product store for use case tests.
type memProductRepo struct {
	products   map[uuid.UUID]*entity.Product
	lastFilter adapter.ProductFilter
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (r *memProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *memProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domainerror.ErrProductNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *memProductRepo) FindWithFilter(ctx context.Context, filter adapter.ProductFilter) ([]*entity.ProductWithCategory, error) {
	r.lastFilter = filter
	if filter.CategoryScope != nil && len(filter.CategoryScope) == 0 {
		return []*entity.ProductWithCategory{}, nil
	}

	var out []*entity.ProductWithCategory
	for _, p := range r.products {
		if filter.CategoryScope != nil {
			inScope := false
			for _, id := range filter.CategoryScope {
				if p.CategoryID == id {
					inScope = true
				}
			}
			if !inScope {
				continue
			}
		}
		copied := *p
		out = append(out, &entity.ProductWithCategory{Product: &copied})
	}
	return out, nil
}

func (r *memProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return domainerror.ErrProductNotFound
	}
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *memProductRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) error {
	p, ok := r.products[id]
	if !ok {
		return domainerror.ErrProductNotFound
	}
	p.Status = status
	return nil
}

func (r *memProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) FindExpiringWithin(ctx context.Context, from, to time.Time, excludeStatus entity.ProductStatus) ([]*entity.ProductWithCategory, error) {
	return nil, nil
}

func (r *memProductRepo) FindExpiredBefore(ctx context.Context, now time.Time, excludeStatus entity.ProductStatus) ([]*entity.ProductWithCategory, error) {
	return nil, nil
}

// memCategoryRepo serves a fixed category set.
type memCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newMemCategoryRepo(categories ...*entity.Category) *memCategoryRepo {
	repo := &memCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
	for _, c := range categories {
		repo.categories[c.ID] = c
	}
	return repo
}

func (r *memCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *memCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return c, nil
}

func (r *memCategoryRepo) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCategoryRepo) FindWithManagers(ctx context.Context) ([]*entity.CategoryWithManagers, error) {
	return nil, nil
}

func (r *memCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *memCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

// testClock returns a constant time.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }
