package schema

import (
	"strings"
	"time"
)

// Entity inputs are the candidate records accepted at the write boundary.
// Validate normalizes the record in place (trimming, slug generation, email
// lowercasing) and returns field errors, nil when the record is valid.

type CategoryInput struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Slug string `json:"slug" validate:"omitempty,slug,max=100"`
}

func (in *CategoryInput) Validate() Errors {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)
	if in.Slug == "" && in.Name != "" {
		in.Slug = Slugify(in.Name)
	}
	return check(in)
}

type BlogPostInput struct {
	Title       string    `json:"title" validate:"required,min=2,max=200"`
	Slug        string    `json:"slug" validate:"omitempty,slug,max=200"`
	Excerpt     string    `json:"excerpt" validate:"max=500"`
	Content     string    `json:"content" validate:"required"`
	Published   bool      `json:"published"`
	AuthorName  string    `json:"author_name" validate:"required,min=2,max=100"`
	CoverImage  string    `json:"cover_image" validate:"omitempty,url"`
	PublishedAt time.Time `json:"published_at"`
	CategoryID  string    `json:"category_id" validate:"omitempty,len=24,hexadecimal"`
}

func (in *BlogPostInput) Validate() Errors {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = strings.TrimSpace(in.Slug)
	in.AuthorName = strings.TrimSpace(in.AuthorName)
	if in.Slug == "" && in.Title != "" {
		in.Slug = Slugify(in.Title)
	}
	if in.Published && in.PublishedAt.IsZero() {
		in.PublishedAt = time.Now()
	}
	return check(in)
}

type ProjectInput struct {
	Title        string   `json:"title" validate:"required,min=2,max=200"`
	Description  string   `json:"description" validate:"required,max=2000"`
	Images       []string `json:"images" validate:"omitempty,dive,url"`
	Category     string   `json:"category" validate:"max=100"`
	Technologies []string `json:"technologies" validate:"omitempty,dive,min=1,max=50"`
	Order        int      `json:"order" validate:"min=0"`
}

func (in *ProjectInput) Validate() Errors {
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.TrimSpace(in.Category)
	return check(in)
}

type ServiceInput struct {
	Title       string `json:"title" validate:"required,min=2,max=100"`
	Slug        string `json:"slug" validate:"omitempty,slug,max=100"`
	Description string `json:"description" validate:"required,max=2000"`
	Icon        string `json:"icon" validate:"max=100"`
}

func (in *ServiceInput) Validate() Errors {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = strings.TrimSpace(in.Slug)
	if in.Slug == "" && in.Title != "" {
		in.Slug = Slugify(in.Title)
	}
	return check(in)
}

type TeamMemberInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Position string `json:"position" validate:"required,max=100"`
	Bio      string `json:"bio" validate:"max=2000"`
	Image    string `json:"image" validate:"omitempty,url"`
	LinkedIn string `json:"linkedin" validate:"omitempty,url"`
	Twitter  string `json:"twitter" validate:"omitempty,url"`
}

func (in *TeamMemberInput) Validate() Errors {
	in.Name = strings.TrimSpace(in.Name)
	in.Position = strings.TrimSpace(in.Position)
	return check(in)
}

type TestimonialInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Position string `json:"position" validate:"max=100"`
	Company  string `json:"company" validate:"max=100"`
	Content  string `json:"content" validate:"required,min=5,max=2000"`
	Image    string `json:"image" validate:"omitempty,url"`
}

func (in *TestimonialInput) Validate() Errors {
	in.Name = strings.TrimSpace(in.Name)
	return check(in)
}

type ContactMessageInput struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"max=30"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,min=5,max=5000"`
}

func (in *ContactMessageInput) Validate() Errors {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Subject = strings.TrimSpace(in.Subject)
	return check(in)
}

type SubscriberInput struct {
	Email string `json:"email" validate:"required,email"`
}

func (in *SubscriberInput) Validate() Errors {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	return check(in)
}
