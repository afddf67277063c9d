package adapters

import (
	"errors"
	"testing"

	domainerror "github.com/expire-tracker/backend/internal/domain/error"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	service := NewPasswordService()

	t.Run("verifies hashed password", func(t *testing.T) {
		hash, err := service.HashPassword("correct-horse-battery")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hash == "correct-horse-battery" {
			t.Fatal("expected hash to differ from plain text")
		}

		if err := service.VerifyPassword(hash, "correct-horse-battery"); err != nil {
			t.Errorf("expected verification to succeed: %v", err)
		}
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		hash, err := service.HashPassword("correct-horse-battery")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := service.VerifyPassword(hash, "wrong-password"); err == nil {
			t.Error("expected verification to fail for wrong password")
		}
	})

	t.Run("hashes are salted", func(t *testing.T) {
		first, err := service.HashPassword("same-password")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := service.HashPassword("same-password")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first == second {
			t.Error("expected distinct hashes for the same password")
		}
	})
}

func TestPasswordService_ValidatePasswordStrength(t *testing.T) {
	service := NewPasswordService()

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"meets minimum length", "12345678", true},
		{"longer password", "a-much-longer-password", true},
		{"too short", "1234567", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.valid && err != nil {
				t.Errorf("expected password to be accepted: %v", err)
			}
			if !tt.valid && !errors.Is(err, domainerror.ErrWeakPassword) {
				t.Errorf("expected weak password error, got %v", err)
			}
		})
	}
}
