package repositories

import (
	"context"

	"atelier-cms/models"
	"atelier-cms/store"
)

type TestimonialRepository struct {
	Collection[models.Testimonial]
}

func NewTestimonialRepository(s store.Store) *TestimonialRepository {
	return &TestimonialRepository{NewCollection[models.Testimonial](s, "testimonials")}
}

func (r *TestimonialRepository) List(ctx context.Context) ([]models.Testimonial, error) {
	return r.GetAll(ctx, store.Query{SortBy: "created_at", SortDesc: true})
}
