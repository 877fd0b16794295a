package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a portfolio entry.
// Collection: projects
//
// Order is a manual sort key maintained by the admin; listings sort by it
// ascending. No gap filling happens when entries are removed.
type Project struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
	Version      int64              `bson:"version" json:"version"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Images       []string           `bson:"images" json:"images"`
	Category     string             `bson:"category" json:"category"`
	Technologies []string           `bson:"technologies" json:"technologies"`
	Order        int                `bson:"order" json:"order"`
}
