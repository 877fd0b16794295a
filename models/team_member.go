package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamMember is a person on the about page.
// Collection: team-members
type TeamMember struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	Version   int64              `bson:"version" json:"version"`
	Name      string             `bson:"name" json:"name"`
	Position  string             `bson:"position" json:"position"`
	Bio       string             `bson:"bio" json:"bio"`
	Image     string             `bson:"image" json:"image"`
	LinkedIn  string             `bson:"linkedin" json:"linkedin"`
	Twitter   string             `bson:"twitter" json:"twitter"`
}
