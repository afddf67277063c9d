package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUser_CategoryScope(t *testing.T) {
	catA := uuid.New()
	catB := uuid.New()

	t.Run("admin scope is nil", func(t *testing.T) {
		admin := &User{Role: RoleAdmin, ManagedCategoryIDs: []uuid.UUID{catA}}
		if admin.CategoryScope() != nil {
			t.Error("expected nil scope for admin")
		}
	})

	t.Run("restricted user scope lists managed categories", func(t *testing.T) {
		user := &User{Role: RoleUser, ManagedCategoryIDs: []uuid.UUID{catA, catB}}
		scope := user.CategoryScope()
		if len(scope) != 2 {
			t.Fatalf("expected 2 categories in scope, got %d", len(scope))
		}
		if scope[0] != catA || scope[1] != catB {
			t.Error("expected scope to match managed category IDs")
		}
	})

	t.Run("restricted user managing nothing gets empty non-nil scope", func(t *testing.T) {
		user := &User{Role: RoleUser}
		scope := user.CategoryScope()
		if scope == nil {
			t.Fatal("expected non-nil scope for restricted user")
		}
		if len(scope) != 0 {
			t.Errorf("expected empty scope, got %d entries", len(scope))
		}
	})
}

func TestUser_ManagesCategory(t *testing.T) {
	catA := uuid.New()
	catB := uuid.New()

	t.Run("admin manages every category", func(t *testing.T) {
		admin := &User{Role: RoleAdmin}
		if !admin.ManagesCategory(catA) {
			t.Error("expected admin to manage any category")
		}
	})

	t.Run("restricted user manages only assigned categories", func(t *testing.T) {
		user := &User{Role: RoleUser, ManagedCategoryIDs: []uuid.UUID{catA}}
		if !user.ManagesCategory(catA) {
			t.Error("expected user to manage assigned category")
		}
		if user.ManagesCategory(catB) {
			t.Error("expected user not to manage unassigned category")
		}
	})
}
