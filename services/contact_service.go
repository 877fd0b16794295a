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

// ContactService appends contact-form submissions and lists them for the
// admin inbox. Messages are never updated or exposed publicly.
type ContactService struct {
	repo *repositories.ContactMessageRepository
}

func NewContactService(repo *repositories.ContactMessageRepository) *ContactService {
	return &ContactService{repo: repo}
}

func (s *ContactService) Create(ctx context.Context, in schema.ContactMessageInput) (*dto.ContactMessageDTO, error) {
	if errs := in.Validate(); errs != nil {
		return nil, errs
	}
	m := models.ContactMessage{
		CreatedAt: time.Now(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Subject:   in.Subject,
		Message:   in.Message,
	}
	id, err := s.repo.Add(ctx, &m)
	if err != nil {
		return nil, err
	}
	m.ID, _ = primitive.ObjectIDFromHex(id)
	d := dto.NewContactMessageDTO(m)
	return &d, nil
}

func (s *ContactService) List(ctx context.Context) ([]dto.ContactMessageDTO, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactMessageDTO, 0, len(items))
	for _, m := range items {
		out = append(out, dto.NewContactMessageDTO(m))
	}
	return out, nil
}
