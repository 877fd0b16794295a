package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscriber is a newsletter signup.
// Collection: subscribers (unique index on email). Append-only.
type Subscriber struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	Email     string             `bson:"email" json:"email"`
}
