package utils

import (
	"errors"
	"testing"
	"time"

	"compatron/internal/models"
)

func TestManagerRoundTrip(t *testing.T) {
	m, err := NewManager("secret")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	token, err := m.NewJWT(models.SessionUser{ID: 42, Username: "ann"}, time.Hour)
	if err != nil {
		t.Fatalf("NewJWT: %v", err)
	}
	user, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if user.ID != 42 || user.Username != "ann" {
		t.Fatalf("unexpected user %#v", user)
	}
}

func TestManagerRejects(t *testing.T) {
	m, _ := NewManager("secret")
	other, _ := NewManager("other")

	expired, _ := m.NewJWT(models.SessionUser{ID: 1, Username: "ann"}, -time.Minute)
	foreign, _ := other.NewJWT(models.SessionUser{ID: 1, Username: "ann"}, time.Hour)

	cases := map[string]string{
		"expired":   expired,
		"wrong key": foreign,
		"garbage":   "not-a-token",
		"empty":     "",
	}
	for name, token := range cases {
		if _, err := m.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("%s: expected ErrInvalidToken got %v", name, err)
		}
	}
}

func TestNewManagerRequiresKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Fatalf("expected error for empty signing key")
	}
}
