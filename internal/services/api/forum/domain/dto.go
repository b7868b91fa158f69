// Package domain holds forum post types and ports
package domain

import "context"

// Post limits in runes
const (
	MaxAuthor  = 80
	MaxContent = 2000
)

// TimestampLayout is ISO local date-time without zone
const TimestampLayout = "2006-01-02T15:04:05"

// Post is a single forum entry. Posts are never edited after creation
type Post struct {
	ID        int
	Author    string
	Content   string
	Timestamp string
}

// CreateInput is the POST /api/forum body
type CreateInput struct {
	Author  string `json:"author"  validate:"required,max=80"`
	Content string `json:"content" validate:"required,max=2000"`
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	List(ctx context.Context) []Post
	Create(ctx context.Context, in CreateInput) (Post, error)
}
