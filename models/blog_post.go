package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost is an authored article shown on the public blog.
// Collection: blog-posts (unique index on slug)
//
// CategoryID is a weak reference: it is checked against the categories
// collection when the post is written, but a category deleted afterwards
// leaves it dangling. Read paths must tolerate a missing category.
type BlogPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	Version     int64              `bson:"version" json:"version"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Excerpt     string             `bson:"excerpt" json:"excerpt"`
	Content     string             `bson:"content" json:"content"`
	Published   bool               `bson:"published" json:"published"`
	AuthorName  string             `bson:"author_name" json:"author_name"`
	CoverImage  string             `bson:"cover_image" json:"cover_image"`
	PublishedAt time.Time          `bson:"published_at" json:"published_at"`
	CategoryID  string             `bson:"category_id" json:"category_id"`
}
