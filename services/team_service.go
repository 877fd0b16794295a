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

type TeamService struct {
	repo *repositories.TeamMemberRepository
}

func NewTeamService(repo *repositories.TeamMemberRepository) *TeamService {
	return &TeamService{repo: repo}
}

func (s *TeamService) List(ctx context.Context) ([]dto.TeamMemberDTO, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TeamMemberDTO, 0, len(items))
	for _, m := range items {
		out = append(out, dto.NewTeamMemberDTO(m))
	}
	return out, nil
}

func (s *TeamService) Create(ctx context.Context, in schema.TeamMemberInput) (*dto.TeamMemberDTO, error) {
	if errs := in.Validate(); errs != nil {
		return nil, errs
	}
	now := time.Now()
	m := models.TeamMember{
		CreatedAt: now,
		UpdatedAt: now,
		Name:      in.Name,
		Position:  in.Position,
		Bio:       in.Bio,
		Image:     in.Image,
		LinkedIn:  in.LinkedIn,
		Twitter:   in.Twitter,
	}
	id, err := s.repo.Add(ctx, &m)
	if err != nil {
		return nil, err
	}
	m.ID, _ = primitive.ObjectIDFromHex(id)
	d := dto.NewTeamMemberDTO(m)
	return &d, nil
}

func (s *TeamService) Update(ctx context.Context, id string, version int64, in schema.TeamMemberInput) (*dto.TeamMemberDTO, error) {
	if errs := in.Validate(); errs != nil {
		return nil, errs
	}
	fields := map[string]any{
		"name":       in.Name,
		"position":   in.Position,
		"bio":        in.Bio,
		"image":      in.Image,
		"linkedin":   in.LinkedIn,
		"twitter":    in.Twitter,
		"updated_at": time.Now(),
	}
	if err := s.repo.Update(ctx, id, version, fields); err != nil {
		return nil, err
	}
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := dto.NewTeamMemberDTO(*m)
	return &d, nil
}

func (s *TeamService) Delete(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}
