package repositories

import (
	"context"

	"atelier-cms/models"
	"atelier-cms/store"
)

type ProjectRepository struct {
	Collection[models.Project]
}

func NewProjectRepository(s store.Store) *ProjectRepository {
	return &ProjectRepository{NewCollection[models.Project](s, "projects")}
}

// List returns projects by their manual sort key ascending.
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	return r.GetAll(ctx, store.Query{SortBy: "order"})
}
