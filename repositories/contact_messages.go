package repositories

import (
	"context"

	"atelier-cms/models"
	"atelier-cms/store"
)

// ContactMessageRepository is append-only: messages are created by the
// public form and read by the admin, never updated.
type ContactMessageRepository struct {
	Collection[models.ContactMessage]
}

func NewContactMessageRepository(s store.Store) *ContactMessageRepository {
	return &ContactMessageRepository{NewCollection[models.ContactMessage](s, "contact-messages")}
}

func (r *ContactMessageRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	return r.GetAll(ctx, store.Query{SortBy: "created_at", SortDesc: true})
}
