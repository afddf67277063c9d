package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expire-tracker/backend/internal/domain/entity"
	"github.com/expire-tracker/backend/internal/integration/persistence/model"
)

// setupTestDB opens an isolated in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.UserCategoryModel{},
		&model.ProductModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *entity.Category {
	t.Helper()

	category := entity.NewCategory(name)
	if err := NewCategoryRepository(db).Create(context.Background(), category); err != nil {
		t.Fatalf("failed to seed category %q: %v", name, err)
	}
	return category
}

func seedProduct(t *testing.T, db *gorm.DB, name string, expiry time.Time, status entity.ProductStatus, categoryID uuid.UUID) *entity.Product {
	t.Helper()

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	product := &entity.Product{
		ID:         uuid.New(),
		Name:       name,
		ExpiryDate: expiry,
		Status:     status,
		CategoryID: categoryID,
		Value:      decimal.NewFromFloat(9.99),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := NewProductRepository(db).Create(context.Background(), product); err != nil {
		t.Fatalf("failed to seed product %q: %v", name, err)
	}
	return product
}

func seedUser(t *testing.T, db *gorm.DB, name, email string, role entity.UserRole) *entity.User {
	t.Helper()

	user := entity.NewUser(name, email, "hashed-password", role)
	if err := NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user %q: %v", email, err)
	}
	return user
}
