package repositories

import (
	"context"

	"atelier-cms/models"
	"atelier-cms/store"
)

type UserRepository struct {
	Collection[models.User]
}

func NewUserRepository(s store.Store) *UserRepository {
	return &UserRepository{NewCollection[models.User](s, "users")}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.FindOne(ctx, store.Query{Eq: map[string]any{"username": username}})
}
