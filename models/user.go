package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an admin account.
// Collection: users (unique index on username). The default deployment has a
// single admin whose credentials come from the environment; the collection
// exists so additional accounts can be provisioned without a schema change.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	Version   int64              `bson:"version" json:"version"`
	Username  string             `bson:"username" json:"username"`
	Role      string             `bson:"role" json:"role"`
}
