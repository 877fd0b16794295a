package repositories

import (
	"context"

	"atelier-cms/models"
	"atelier-cms/store"
)

type TeamMemberRepository struct {
	Collection[models.TeamMember]
}

func NewTeamMemberRepository(s store.Store) *TeamMemberRepository {
	return &TeamMemberRepository{NewCollection[models.TeamMember](s, "team-members")}
}

func (r *TeamMemberRepository) List(ctx context.Context) ([]models.TeamMember, error) {
	return r.GetAll(ctx, store.Query{SortBy: "created_at"})
}
