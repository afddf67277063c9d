package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/domain/entity"
	domainerror "github.com/expire-tracker/backend/internal/domain/error"
)

func TestCategoryRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewCategoryRepository(db)

	dairy := seedCategory(t, db, "Dairy")
	seedCategory(t, db, "Bakery")

	t.Run("finds by ID", func(t *testing.T) {
		found, err := repo.FindByID(ctx, dairy.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Name != "Dairy" {
			t.Errorf("expected Dairy, got %s", found.Name)
		}
	})

	t.Run("missing ID maps to not-found error", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected category not found error, got %v", err)
		}
	})

	t.Run("finds by name", func(t *testing.T) {
		found, err := repo.FindByName(ctx, "Dairy")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found == nil || found.ID != dairy.ID {
			t.Error("expected to find Dairy by name")
		}
	})

	t.Run("absent name returns nil without error", func(t *testing.T) {
		found, err := repo.FindByName(ctx, "Frozen")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found != nil {
			t.Errorf("expected nil for absent name, got %+v", found)
		}
	})

	t.Run("lists all ordered by name", func(t *testing.T) {
		categories, err := repo.FindAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(categories))
		}
		if categories[0].Name != "Bakery" || categories[1].Name != "Dairy" {
			t.Errorf("expected alphabetical order, got %s then %s", categories[0].Name, categories[1].Name)
		}
	})
}

func TestCategoryRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewCategoryRepository(db)

	category := seedCategory(t, db, "Diary")

	category.Name = "Dairy"
	category.UpdatedAt = time.Now().UTC()
	if err := repo.Update(ctx, category); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, category.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Name != "Dairy" {
		t.Errorf("expected renamed category, got %s", found.Name)
	}
}

func TestCategoryRepository_FindWithManagers(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewCategoryRepository(db)
	userRepo := NewUserRepository(db)

	dairy := seedCategory(t, db, "Dairy")
	seedCategory(t, db, "Bakery")

	manager := seedUser(t, db, "Mana", "mana@example.com", entity.RoleUser)
	if err := userRepo.SetManagedCategories(ctx, manager.ID, []uuid.UUID{dairy.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	withManagers, err := repo.FindWithManagers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(withManagers) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(withManagers))
	}

	byName := make(map[string]*entity.CategoryWithManagers)
	for _, cm := range withManagers {
		byName[cm.Category.Name] = cm
	}

	if len(byName["Dairy"].Managers) != 1 || byName["Dairy"].Managers[0].Email != "mana@example.com" {
		t.Errorf("expected Dairy managed by mana@example.com, got %+v", byName["Dairy"].Managers)
	}
	if len(byName["Bakery"].Managers) != 0 {
		t.Errorf("expected Bakery without managers, got %d", len(byName["Bakery"].Managers))
	}
}

func TestCategoryRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewCategoryRepository(db)
	productRepo := NewProductRepository(db)
	userRepo := NewUserRepository(db)

	dairy := seedCategory(t, db, "Dairy")
	bakery := seedCategory(t, db, "Bakery")

	doomed := seedProduct(t, db, "Milk", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), entity.ProductStatusFresh, dairy.ID)
	kept := seedProduct(t, db, "Bread", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), entity.ProductStatusFresh, bakery.ID)

	manager := seedUser(t, db, "Mana", "mana@example.com", entity.RoleUser)
	if err := userRepo.SetManagedCategories(ctx, manager.ID, []uuid.UUID{dairy.ID, bakery.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.Delete(ctx, dairy.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("category is gone", func(t *testing.T) {
		_, err := repo.FindByID(ctx, dairy.ID)
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected category gone, got %v", err)
		}
	})

	t.Run("its products are gone", func(t *testing.T) {
		_, err := productRepo.FindByID(ctx, doomed.ID)
		if !errors.Is(err, domainerror.ErrProductNotFound) {
			t.Errorf("expected product gone, got %v", err)
		}

		remaining, err := productRepo.FindWithFilter(ctx, adapter.ProductFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(remaining) != 1 || remaining[0].Product.ID != kept.ID {
			t.Errorf("expected only the bakery product to survive, got %d products", len(remaining))
		}
	})

	t.Run("manager assignments are gone", func(t *testing.T) {
		user, err := userRepo.FindByID(ctx, manager.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(user.ManagedCategoryIDs) != 1 || user.ManagedCategoryIDs[0] != bakery.ID {
			t.Errorf("expected only the bakery assignment to survive, got %v", user.ManagedCategoryIDs)
		}
	})
}
