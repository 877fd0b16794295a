package services

import (
	"context"
	"errors"
	"testing"

	"atelier-cms/auth"
	"atelier-cms/repositories"
	"atelier-cms/store"
)

func newAuthService(t *testing.T) (*AuthService, store.Store) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	s := store.NewMemoryStore().Unique("users", "username")
	svc, err := NewAuthServiceFromEnv(repositories.NewUserRepository(s))
	if err != nil {
		t.Fatalf("auth init: %v", err)
	}
	return svc, s
}

func TestLoginIssuesAdminToken(t *testing.T) {
	svc, _ := newAuthService(t)

	token, err := svc.Login(context.Background(), "admin", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	sub, role, err := svc.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sub != "admin" || role != auth.RoleAdmin {
		t.Fatalf("unexpected claims: sub=%q role=%q", sub, role)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	for _, tc := range [][2]string{
		{"admin", "wrong"},
		{"nobody", "hunter2"},
		{"", ""},
	} {
		_, err := svc.Login(ctx, tc[0], tc[1])
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("login(%q, %q): expected ErrInvalidCredentials, got %v", tc[0], tc[1], err)
		}
	}
}

func TestLoginRecordsAdminUser(t *testing.T) {
	svc, s := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Login(ctx, "admin", "hunter2"); err != nil {
		t.Fatalf("login: %v", err)
	}
	// A second login must not insert a second record.
	if _, err := svc.Login(ctx, "admin", "hunter2"); err != nil {
		t.Fatalf("second login: %v", err)
	}
	n, err := s.Count(ctx, "users", store.Query{Eq: map[string]any{"username": "admin"}})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected a single admin record, got %d", n)
	}
}

func TestAuthInitRequiresCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")

	s := store.NewMemoryStore()
	if _, err := NewAuthServiceFromEnv(repositories.NewUserRepository(s)); err == nil {
		t.Fatal("expected error when admin credentials are unset")
	}
}
