package repositories

import (
	"context"

	"atelier-cms/models"
	"atelier-cms/store"
)

type CategoryRepository struct {
	Collection[models.Category]
}

func NewCategoryRepository(s store.Store) *CategoryRepository {
	return &CategoryRepository{NewCollection[models.Category](s, "categories")}
}

// List returns all categories sorted by name.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	return r.GetAll(ctx, store.Query{SortBy: "name"})
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return r.FindOne(ctx, store.Query{Eq: map[string]any{"slug": slug}})
}
