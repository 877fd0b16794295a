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

// ServiceService manages the offered-services collection. Slugs follow the
// same generation and uniqueness rules as categories.
type ServiceService struct {
	repo *repositories.ServiceRepository
}

func NewServiceService(repo *repositories.ServiceRepository) *ServiceService {
	return &ServiceService{repo: repo}
}

func (s *ServiceService) List(ctx context.Context) ([]dto.ServiceDTO, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewServiceDTO(it))
	}
	return out, nil
}

func (s *ServiceService) Create(ctx context.Context, in schema.ServiceInput) (*dto.ServiceDTO, error) {
	if errs := in.Validate(); errs != nil {
		return nil, errs
	}
	if _, err := s.repo.GetBySlug(ctx, in.Slug); err == nil {
		return nil, fmt.Errorf("%w: services.slug", store.ErrDuplicate)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	svc := models.Service{
		CreatedAt:   now,
		UpdatedAt:   now,
		Title:       in.Title,
		Slug:        in.Slug,
		Description: in.Description,
		Icon:        in.Icon,
	}
	id, err := s.repo.Add(ctx, &svc)
	if err != nil {
		return nil, err
	}
	svc.ID, _ = primitive.ObjectIDFromHex(id)
	d := dto.NewServiceDTO(svc)
	return &d, nil
}

func (s *ServiceService) Update(ctx context.Context, id string, version int64, in schema.ServiceInput) (*dto.ServiceDTO, error) {
	if errs := in.Validate(); errs != nil {
		return nil, errs
	}
	fields := map[string]any{
		"title":       in.Title,
		"slug":        in.Slug,
		"description": in.Description,
		"icon":        in.Icon,
		"updated_at":  time.Now(),
	}
	if err := s.repo.Update(ctx, id, version, fields); err != nil {
		return nil, err
	}
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := dto.NewServiceDTO(*svc)
	return &d, nil
}

func (s *ServiceService) Delete(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}
