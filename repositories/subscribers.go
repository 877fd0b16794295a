package repositories

import (
	"context"

	"atelier-cms/models"
	"atelier-cms/store"
)

// SubscriberRepository is append-only. The unique index on email makes Add
// fail with store.ErrDuplicate for an already-subscribed address.
type SubscriberRepository struct {
	Collection[models.Subscriber]
}

func NewSubscriberRepository(s store.Store) *SubscriberRepository {
	return &SubscriberRepository{NewCollection[models.Subscriber](s, "subscribers")}
}

func (r *SubscriberRepository) List(ctx context.Context) ([]models.Subscriber, error) {
	return r.GetAll(ctx, store.Query{SortBy: "created_at", SortDesc: true})
}
