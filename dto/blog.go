package dto

import (
	"time"

	"atelier-cms/models"
)

// BlogPostDTO is the API shape of a blog post. IDs are hex strings.
// CategoryName is resolved at read time and stays empty when the referenced
// category no longer exists (weak reference, no cascade on delete).
type BlogPostDTO struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Excerpt      string    `json:"excerpt"`
	Content      string    `json:"content"`
	Published    bool      `json:"published"`
	AuthorName   string    `json:"author_name"`
	CoverImage   string    `json:"cover_image"`
	PublishedAt  time.Time `json:"published_at"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Version      int64     `json:"version"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewBlogPostDTO constructs BlogPostDTO from models.BlogPost.
func NewBlogPostDTO(p models.BlogPost, categoryName string) BlogPostDTO {
	return BlogPostDTO{
		ID:           p.ID.Hex(),
		Title:        p.Title,
		Slug:         p.Slug,
		Excerpt:      p.Excerpt,
		Content:      p.Content,
		Published:    p.Published,
		AuthorName:   p.AuthorName,
		CoverImage:   p.CoverImage,
		PublishedAt:  p.PublishedAt,
		CategoryID:   p.CategoryID,
		CategoryName: categoryName,
		Version:      p.Version,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
