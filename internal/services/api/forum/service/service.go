// Package service contains forum workflows
package service

import (
	"context"
	"time"

	"lunacycle/internal/core/normalize"
	perr "lunacycle/internal/platform/errors"
	"lunacycle/internal/platform/logger"
	"lunacycle/internal/platform/net/http/bind"
	"lunacycle/internal/services/api/forum/domain"
	"lunacycle/internal/services/api/forum/repo"
)

// Service defines the forum service contract
type Service interface {
	domain.ServicePort
}

// Welcome is the content a fresh forum starts with
var Welcome = []domain.CreateInput{
	{Author: "AI Admin", Content: "Welcome! Post your cycle questions and share experiences here."},
	{Author: "Early Bird", Content: "Day 8: Feeling great energy! Any workout tips for the follicular phase?"},
}

// Svc implements the forum service
type Svc struct {
	Repo repo.Repo
	now  func() time.Time
	loc  *time.Location
}

// New constructs a forum service over r
func New(r repo.Repo, now func() time.Time, loc *time.Location) *Svc {
	if r == nil {
		panic("forum.Service requires a non nil Repo")
	}
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Svc{Repo: r, now: now, loc: loc}
}

// Seed appends posts without validation; used for the welcome content
func (s *Svc) Seed(posts ...domain.CreateInput) {
	for _, in := range posts {
		s.Repo.Append(s.post(in))
	}
}

// List returns every post in creation order
func (s *Svc) List(_ context.Context) []domain.Post { return s.Repo.All() }

// Create normalizes and validates in, then appends a new post
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Post, error) {
	in.Author = normalize.Name(in.Author)
	in.Content = normalize.Text(in.Content)
	if in.Author == "" || in.Content == "" {
		field := "author"
		if in.Author != "" {
			field = "content"
		}
		return domain.Post{}, perr.WithField(perr.Validationf("missing author or content"), field)
	}
	if err := bind.Validate(in); err != nil {
		return domain.Post{}, err
	}

	p := s.Repo.Append(s.post(in))
	logger.C(ctx).Info().Int("post_id", p.ID).Int("content_len", len(p.Content)).Msg("forum post created")
	return p, nil
}

func (s *Svc) post(in domain.CreateInput) domain.Post {
	return domain.Post{
		Author:    in.Author,
		Content:   in.Content,
		Timestamp: s.now().In(s.loc).Format(domain.TimestampLayout),
	}
}
