package repositories

import (
	"context"

	"atelier-cms/models"
	"atelier-cms/store"
)

type ServiceRepository struct {
	Collection[models.Service]
}

func NewServiceRepository(s store.Store) *ServiceRepository {
	return &ServiceRepository{NewCollection[models.Service](s, "services")}
}

func (r *ServiceRepository) List(ctx context.Context) ([]models.Service, error) {
	return r.GetAll(ctx, store.Query{SortBy: "created_at"})
}

func (r *ServiceRepository) GetBySlug(ctx context.Context, slug string) (*models.Service, error) {
	return r.FindOne(ctx, store.Query{Eq: map[string]any{"slug": slug}})
}
