package dto

import (
	"time"

	"atelier-cms/models"
)

type ContactMessageDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewContactMessageDTO(m models.ContactMessage) ContactMessageDTO {
	return ContactMessageDTO{
		ID:        m.ID.Hex(),
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

type SubscriberDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewSubscriberDTO(s models.Subscriber) SubscriberDTO {
	return SubscriberDTO{
		ID:        s.ID.Hex(),
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
	}
}
