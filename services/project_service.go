package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"atelier-cms/dto"
	"atelier-cms/models"
	"atelier-cms/repositories"
	"atelier-cms/schema"
)

// ProjectService owns portfolio entries. Ordering is the admin's manual
// sort key; removing an entry leaves gaps and that is fine.
type ProjectService struct {
	repo *repositories.ProjectRepository
}

func NewProjectService(repo *repositories.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) List(ctx context.Context) ([]dto.ProjectDTO, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjectDTO, 0, len(items))
	for _, p := range items {
		out = append(out, dto.NewProjectDTO(p))
	}
	return out, nil
}

func (s *ProjectService) Create(ctx context.Context, in schema.ProjectInput) (*dto.ProjectDTO, error) {
	if errs := in.Validate(); errs != nil {
		return nil, errs
	}
	now := time.Now()
	p := models.Project{
		CreatedAt:    now,
		UpdatedAt:    now,
		Title:        in.Title,
		Description:  in.Description,
		Images:       in.Images,
		Category:     in.Category,
		Technologies: in.Technologies,
		Order:        in.Order,
	}
	id, err := s.repo.Add(ctx, &p)
	if err != nil {
		return nil, err
	}
	p.ID, _ = primitive.ObjectIDFromHex(id)
	d := dto.NewProjectDTO(p)
	return &d, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, version int64, in schema.ProjectInput) (*dto.ProjectDTO, error) {
	if errs := in.Validate(); errs != nil {
		return nil, errs
	}
	fields := map[string]any{
		"title":        in.Title,
		"description":  in.Description,
		"images":       in.Images,
		"category":     in.Category,
		"technologies": in.Technologies,
		"order":        in.Order,
		"updated_at":   time.Now(),
	}
	if err := s.repo.Update(ctx, id, version, fields); err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := dto.NewProjectDTO(*p)
	return &d, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}
