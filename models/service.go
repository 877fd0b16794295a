package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is an offered service shown on the services page.
// Collection: services (unique index on slug)
type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	Version     int64              `bson:"version" json:"version"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
	Icon        string             `bson:"icon" json:"icon"`
}
