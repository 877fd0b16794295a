package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"atelier-cms/dto"
	"atelier-cms/models"
	"atelier-cms/repositories"
	"atelier-cms/schema"
	"atelier-cms/store"
)

// CategoryService owns category business rules: slug generation and
// uniqueness on create, version-checked updates, no cascade on delete (blog
// posts referencing a removed category keep their dangling category_id).
type CategoryService struct {
	repo *repositories.CategoryRepository
}

func NewCategoryService(repo *repositories.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]dto.CategoryDTO, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryDTO, 0, len(items))
	for _, c := range items {
		out = append(out, dto.NewCategoryDTO(c))
	}
	return out, nil
}

func (s *CategoryService) Create(ctx context.Context, in schema.CategoryInput) (*dto.CategoryDTO, error) {
	if errs := in.Validate(); errs != nil {
		return nil, errs
	}
	// Friendlier duplicate reporting; the unique index stays authoritative.
	if _, err := s.repo.GetBySlug(ctx, in.Slug); err == nil {
		return nil, fmt.Errorf("%w: categories.slug", store.ErrDuplicate)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	c := models.Category{
		CreatedAt: now,
		UpdatedAt: now,
		Name:      in.Name,
		Slug:      in.Slug,
	}
	id, err := s.repo.Add(ctx, &c)
	if err != nil {
		return nil, err
	}
	c.ID, _ = primitive.ObjectIDFromHex(id)
	d := dto.NewCategoryDTO(c)
	return &d, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, version int64, in schema.CategoryInput) (*dto.CategoryDTO, error) {
	if errs := in.Validate(); errs != nil {
		return nil, errs
	}
	fields := map[string]any{
		"name":       in.Name,
		"slug":       in.Slug,
		"updated_at": time.Now(),
	}
	if err := s.repo.Update(ctx, id, version, fields); err != nil {
		return nil, err
	}
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := dto.NewCategoryDTO(*c)
	return &d, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}
