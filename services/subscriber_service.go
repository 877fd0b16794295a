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

// SubscriberService handles newsletter signups. A duplicate email surfaces
// as store.ErrDuplicate from the unique index; there is never a silent
// second record.
type SubscriberService struct {
	repo *repositories.SubscriberRepository
}

func NewSubscriberService(repo *repositories.SubscriberRepository) *SubscriberService {
	return &SubscriberService{repo: repo}
}

func (s *SubscriberService) Subscribe(ctx context.Context, in schema.SubscriberInput) (*dto.SubscriberDTO, error) {
	if errs := in.Validate(); errs != nil {
		return nil, errs
	}
	sub := models.Subscriber{
		CreatedAt: time.Now(),
		Email:     in.Email,
	}
	id, err := s.repo.Add(ctx, &sub)
	if err != nil {
		return nil, err
	}
	sub.ID, _ = primitive.ObjectIDFromHex(id)
	d := dto.NewSubscriberDTO(sub)
	return &d, nil
}

func (s *SubscriberService) List(ctx context.Context) ([]dto.SubscriberDTO, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SubscriberDTO, 0, len(items))
	for _, sub := range items {
		out = append(out, dto.NewSubscriberDTO(sub))
	}
	return out, nil
}
