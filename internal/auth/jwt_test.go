package auth

import (
	"errors"
	"testing"
	"time"

	"dailyexpense/internal/models"
)

func TestJWTManager(t *testing.T) {
	user := &models.User{ID: "user-1", Username: "alice"}

	t.Run("generate and validate roundtrip", func(t *testing.T) {
		m := NewJWTManager("test-secret", time.Hour)

		token, err := m.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		claims, err := m.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if claims.UserID != user.ID {
			t.Errorf("UserID mismatch: got %s, want %s", claims.UserID, user.ID)
		}
		if claims.Username != user.Username {
			t.Errorf("Username mismatch: got %s, want %s", claims.Username, user.Username)
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		m := NewJWTManager("test-secret", -time.Minute)

		token, err := m.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		m := NewJWTManager("test-secret", time.Hour)
		other := NewJWTManager("other-secret", time.Hour)

		token, err := m.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("malformed token is rejected", func(t *testing.T) {
		m := NewJWTManager("test-secret", time.Hour)

		if _, err := m.Validate("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
