package auth

import (
	"testing"
)

func TestJWTSignParseRoundtrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	m, err := NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("manager: %v", err)
	}

	token, err := m.Sign("admin", RoleAdmin)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	sub, role, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sub != "admin" || role != RoleAdmin {
		t.Fatalf("unexpected claims: sub=%q role=%q", sub, role)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	m1, err := NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	token, err := m1.Sign("admin", RoleAdmin)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-two")
	m2, err := NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	if _, _, err := m2.Parse(token); err == nil {
		t.Fatal("expected parse failure for wrong secret")
	}
}

func TestJWTRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	m, err := NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	if _, _, err := m.Parse("not.a.token"); err == nil {
		t.Fatal("expected parse failure")
	}
}

func TestJWTManagerRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := NewJWTManagerFromEnv(); err == nil {
		t.Fatal("expected error when JWT_SECRET is unset")
	}
}

func TestJWTManagerRejectsBadTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL_HOURS", "zero")
	if _, err := NewJWTManagerFromEnv(); err == nil {
		t.Fatal("expected error for invalid JWT_TTL_HOURS")
	}
}
