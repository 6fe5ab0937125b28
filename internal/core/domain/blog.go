package domain

import "time"

// AuthorKind distinguishes who published a blog post.
type AuthorKind string

const (
	AuthorCompany  AuthorKind = "company"
	AuthorEmployee AuthorKind = "employee"
)

// Blog is a post published by either a company or an employee. Exactly one
// author reference is set, matching AuthorKind.
type Blog struct {
	ID         string     `json:"blog_id" bson:"_id"`
	AuthorKind AuthorKind `json:"author_kind" bson:"author_kind"`
	AuthorID   string     `json:"author_id" bson:"author_id"`
	Title      string     `json:"title" bson:"title"`
	Content    string     `json:"content" bson:"content"`
	CreatedAt  time.Time  `json:"created_at" bson:"created_at"`
}
