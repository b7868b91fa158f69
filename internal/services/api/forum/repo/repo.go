// Package repo stores forum posts in memory
package repo

import (
	"sync"

	"lunacycle/internal/services/api/forum/domain"
)

// Repo is the post store contract
type Repo interface {
	// Append assigns the next id to p, stores it and returns the stored copy
	Append(p domain.Post) domain.Post
	// All returns a snapshot in insertion order
	All() []domain.Post
}

// Memory is an append-only post list. The sequence lives under the same lock
// as the list, so ids follow append order. Contents are lost on restart
type Memory struct {
	mu    sync.Mutex
	seq   int
	posts []domain.Post
}

// NewMemory returns an empty store
func NewMemory() *Memory { return &Memory{} }

// Append implements Repo
func (m *Memory) Append(p domain.Post) domain.Post {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	p.ID = m.seq
	m.posts = append(m.posts, p)
	return p
}

// All implements Repo
func (m *Memory) All() []domain.Post {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Post, len(m.posts))
	copy(out, m.posts)
	return out
}
