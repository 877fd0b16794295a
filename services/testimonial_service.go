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

type TestimonialService struct {
	repo *repositories.TestimonialRepository
}

func NewTestimonialService(repo *repositories.TestimonialRepository) *TestimonialService {
	return &TestimonialService{repo: repo}
}

func (s *TestimonialService) List(ctx context.Context) ([]dto.TestimonialDTO, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TestimonialDTO, 0, len(items))
	for _, t := range items {
		out = append(out, dto.NewTestimonialDTO(t))
	}
	return out, nil
}

func (s *TestimonialService) Create(ctx context.Context, in schema.TestimonialInput) (*dto.TestimonialDTO, error) {
	if errs := in.Validate(); errs != nil {
		return nil, errs
	}
	now := time.Now()
	t := models.Testimonial{
		CreatedAt: now,
		UpdatedAt: now,
		Name:      in.Name,
		Position:  in.Position,
		Company:   in.Company,
		Content:   in.Content,
		Image:     in.Image,
	}
	id, err := s.repo.Add(ctx, &t)
	if err != nil {
		return nil, err
	}
	t.ID, _ = primitive.ObjectIDFromHex(id)
	d := dto.NewTestimonialDTO(t)
	return &d, nil
}

func (s *TestimonialService) Update(ctx context.Context, id string, version int64, in schema.TestimonialInput) (*dto.TestimonialDTO, error) {
	if errs := in.Validate(); errs != nil {
		return nil, errs
	}
	fields := map[string]any{
		"name":       in.Name,
		"position":   in.Position,
		"company":    in.Company,
		"content":    in.Content,
		"image":      in.Image,
		"updated_at": time.Now(),
	}
	if err := s.repo.Update(ctx, id, version, fields); err != nil {
		return nil, err
	}
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := dto.NewTestimonialDTO(*t)
	return &d, nil
}

func (s *TestimonialService) Delete(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}
