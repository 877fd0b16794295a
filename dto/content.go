package dto

import (
	"time"

	"atelier-cms/models"
)

type CategoryDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCategoryDTO(c models.Category) CategoryDTO {
	return CategoryDTO{
		ID:        c.ID.Hex(),
		Name:      c.Name,
		Slug:      c.Slug,
		Version:   c.Version,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type ProjectDTO struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Images       []string  `json:"images"`
	Category     string    `json:"category"`
	Technologies []string  `json:"technologies"`
	Order        int       `json:"order"`
	Version      int64     `json:"version"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewProjectDTO(p models.Project) ProjectDTO {
	return ProjectDTO{
		ID:           p.ID.Hex(),
		Title:        p.Title,
		Description:  p.Description,
		Images:       p.Images,
		Category:     p.Category,
		Technologies: p.Technologies,
		Order:        p.Order,
		Version:      p.Version,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

type ServiceDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Version     int64     `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewServiceDTO(s models.Service) ServiceDTO {
	return ServiceDTO{
		ID:          s.ID.Hex(),
		Title:       s.Title,
		Slug:        s.Slug,
		Description: s.Description,
		Icon:        s.Icon,
		Version:     s.Version,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type TeamMemberDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Bio       string    `json:"bio"`
	Image     string    `json:"image"`
	LinkedIn  string    `json:"linkedin"`
	Twitter   string    `json:"twitter"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewTeamMemberDTO(m models.TeamMember) TeamMemberDTO {
	return TeamMemberDTO{
		ID:        m.ID.Hex(),
		Name:      m.Name,
		Position:  m.Position,
		Bio:       m.Bio,
		Image:     m.Image,
		LinkedIn:  m.LinkedIn,
		Twitter:   m.Twitter,
		Version:   m.Version,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type TestimonialDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Company   string    `json:"company"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewTestimonialDTO(t models.Testimonial) TestimonialDTO {
	return TestimonialDTO{
		ID:        t.ID.Hex(),
		Name:      t.Name,
		Position:  t.Position,
		Company:   t.Company,
		Content:   t.Content,
		Image:     t.Image,
		Version:   t.Version,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
