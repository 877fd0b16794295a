package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"os"
	"time"

	"atelier-cms/auth"
	"atelier-cms/internal/logger"
	"atelier-cms/models"
	"atelier-cms/repositories"
	"atelier-cms/store"
)

var ErrInvalidCredentials = errors.New("invalid_credentials")

// AuthService checks the admin credentials configured in the environment
// (ADMIN_USERNAME / ADMIN_PASSWORD) and issues admin JWTs. The single-admin
// model is deliberate; the users collection records the account so the
// deployment can grow past one admin without a schema change.
type AuthService struct {
	users    *repositories.UserRepository
	jwt      *auth.JWTManager
	username string
	password string
}

func NewAuthServiceFromEnv(users *repositories.UserRepository) (*AuthService, error) {
	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		return nil, err
	}
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return nil, fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD are required")
	}
	return &AuthService{
		users:    users,
		jwt:      jwtManager,
		username: username,
		password: password,
	}, nil
}

// Login returns a signed admin token for valid credentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	// Compare both fields unconditionally and in constant time.
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	s.ensureAdminUser(ctx)
	return s.jwt.Sign(s.username, auth.RoleAdmin)
}

// ParseAccessToken validates a token and returns its subject and role.
func (s *AuthService) ParseAccessToken(token string) (string, string, error) {
	return s.jwt.Parse(token)
}

// ensureAdminUser records the admin account in the users collection on
// first successful login. Failure here never blocks the login.
func (s *AuthService) ensureAdminUser(ctx context.Context) {
	_, err := s.users.GetByUsername(ctx, s.username)
	if err == nil {
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		logger.Log.Warnf("admin user lookup failed: %v", err)
		return
	}
	now := time.Now()
	u := models.User{
		CreatedAt: now,
		UpdatedAt: now,
		Username:  s.username,
		Role:      auth.RoleAdmin,
	}
	if _, err := s.users.Add(ctx, &u); err != nil && !errors.Is(err, store.ErrDuplicate) {
		logger.Log.Warnf("admin user insert failed: %v", err)
	}
}
