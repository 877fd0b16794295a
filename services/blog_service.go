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

// BlogService owns blog post business rules. A non-empty category_id is
// checked against the categories collection at write time; the check is a
// plain lookup, not a transaction, so a category deleted afterwards (or
// concurrently) leaves the reference dangling. Read paths resolve the
// category name defensively and return it empty when missing.
type BlogService struct {
	posts      *repositories.BlogPostRepository
	categories *repositories.CategoryRepository
}

func NewBlogService(posts *repositories.BlogPostRepository, categories *repositories.CategoryRepository) *BlogService {
	return &BlogService{posts: posts, categories: categories}
}

type ListPostsInput struct {
	Page         int
	PageSize     int
	CategorySlug string
}

// ListPublished returns the public listing: published posts newest first,
// optionally filtered by category slug.
func (s *BlogService) ListPublished(ctx context.Context, in ListPostsInput) (*dto.PaginationBlogPostDTO, error) {
	opts := repositories.ListPostsOptions{Page: in.Page, PageSize: in.PageSize}
	if in.CategorySlug != "" {
		cat, err := s.categories.GetBySlug(ctx, in.CategorySlug)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Unknown category slug matches nothing.
				return &dto.PaginationBlogPostDTO{
					Data:     []dto.BlogPostDTO{},
					Page:     in.Page,
					PageSize: in.PageSize,
				}, nil
			}
			return nil, err
		}
		opts.CategoryID = cat.ID.Hex()
	}

	posts, total, err := s.posts.ListPublished(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &dto.PaginationBlogPostDTO{
		Data:     s.toDTOs(ctx, posts),
		Page:     in.Page,
		PageSize: in.PageSize,
		Total:    total,
	}, nil
}

// GetPublishedBySlug returns a published post; drafts read as not found.
func (s *BlogService) GetPublishedBySlug(ctx context.Context, slug string) (*dto.BlogPostDTO, error) {
	p, err := s.posts.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	d := dto.NewBlogPostDTO(*p, s.categoryName(ctx, p.CategoryID))
	return &d, nil
}

// ListAll returns every post including drafts. Admin use.
func (s *BlogService) ListAll(ctx context.Context) ([]dto.BlogPostDTO, error) {
	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toDTOs(ctx, posts), nil
}

func (s *BlogService) Create(ctx context.Context, in schema.BlogPostInput) (*dto.BlogPostDTO, error) {
	if errs := in.Validate(); errs != nil {
		return nil, errs
	}
	if errs := s.checkCategory(ctx, in.CategoryID); errs != nil {
		return nil, errs
	}
	if _, err := s.posts.GetBySlug(ctx, in.Slug); err == nil {
		return nil, fmt.Errorf("%w: blog-posts.slug", store.ErrDuplicate)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	p := models.BlogPost{
		CreatedAt:   now,
		UpdatedAt:   now,
		Title:       in.Title,
		Slug:        in.Slug,
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		Published:   in.Published,
		AuthorName:  in.AuthorName,
		CoverImage:  in.CoverImage,
		PublishedAt: in.PublishedAt,
		CategoryID:  in.CategoryID,
	}
	id, err := s.posts.Add(ctx, &p)
	if err != nil {
		return nil, err
	}
	p.ID, _ = primitive.ObjectIDFromHex(id)
	d := dto.NewBlogPostDTO(p, s.categoryName(ctx, p.CategoryID))
	return &d, nil
}

func (s *BlogService) Update(ctx context.Context, id string, version int64, in schema.BlogPostInput) (*dto.BlogPostDTO, error) {
	if errs := in.Validate(); errs != nil {
		return nil, errs
	}
	if errs := s.checkCategory(ctx, in.CategoryID); errs != nil {
		return nil, errs
	}
	fields := map[string]any{
		"title":        in.Title,
		"slug":         in.Slug,
		"excerpt":      in.Excerpt,
		"content":      in.Content,
		"published":    in.Published,
		"author_name":  in.AuthorName,
		"cover_image":  in.CoverImage,
		"published_at": in.PublishedAt,
		"category_id":  in.CategoryID,
		"updated_at":   time.Now(),
	}
	if err := s.posts.Update(ctx, id, version, fields); err != nil {
		return nil, err
	}
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := dto.NewBlogPostDTO(*p, s.categoryName(ctx, p.CategoryID))
	return &d, nil
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	return s.posts.Remove(ctx, id)
}

func (s *BlogService) checkCategory(ctx context.Context, categoryID string) error {
	if categoryID == "" {
		return nil
	}
	_, err := s.categories.GetByID(ctx, categoryID)
	if errors.Is(err, store.ErrNotFound) {
		return schema.Errors{{Field: "category_id", Message: "references a missing category"}}
	}
	return err
}

// categoryName resolves a weak category reference, empty when dangling.
func (s *BlogService) categoryName(ctx context.Context, categoryID string) string {
	if categoryID == "" {
		return ""
	}
	cat, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return ""
	}
	return cat.Name
}

func (s *BlogService) toDTOs(ctx context.Context, posts []models.BlogPost) []dto.BlogPostDTO {
	// Resolve category names once per listing.
	names := map[string]string{}
	out := make([]dto.BlogPostDTO, 0, len(posts))
	for _, p := range posts {
		name, ok := names[p.CategoryID]
		if !ok {
			name = s.categoryName(ctx, p.CategoryID)
			names[p.CategoryID] = name
		}
		out = append(out, dto.NewBlogPostDTO(p, name))
	}
	return out
}
