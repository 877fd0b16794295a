package repositories

import (
	"context"

	"atelier-cms/models"
	"atelier-cms/store"
)

type BlogPostRepository struct {
	Collection[models.BlogPost]
}

func NewBlogPostRepository(s store.Store) *BlogPostRepository {
	return &BlogPostRepository{NewCollection[models.BlogPost](s, "blog-posts")}
}

type ListPostsOptions struct {
	Page       int
	PageSize   int
	CategoryID string
}

// ListPublished returns published posts newest first, with the total count
// of matching documents for the pagination envelope.
func (r *BlogPostRepository) ListPublished(ctx context.Context, opts ListPostsOptions) ([]models.BlogPost, int64, error) {
	eq := map[string]any{"published": true}
	if opts.CategoryID != "" {
		eq["category_id"] = opts.CategoryID
	}
	q := store.Query{
		Eq:       eq,
		SortBy:   "published_at",
		SortDesc: true,
		Page:     opts.Page,
		PageSize: opts.PageSize,
	}
	posts, err := r.GetAll(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.Count(ctx, store.Query{Eq: eq})
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// GetPublishedBySlug returns a published post; drafts read as not found.
func (r *BlogPostRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return r.FindOne(ctx, store.Query{Eq: map[string]any{"slug": slug, "published": true}})
}

func (r *BlogPostRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return r.FindOne(ctx, store.Query{Eq: map[string]any{"slug": slug}})
}

// ListAll returns every post, drafts included, newest first. Admin use.
func (r *BlogPostRepository) ListAll(ctx context.Context) ([]models.BlogPost, error) {
	return r.GetAll(ctx, store.Query{SortBy: "created_at", SortDesc: true})
}
