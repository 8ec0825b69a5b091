// Package repo provides key/value access for bookmarks
package repo

import (
	"context"

	"issuehound/internal/modkit/storekit"
	"issuehound/internal/platform/store/kv"
	"issuehound/internal/services/bookmarks/domain"
)

const bookmarksKey = "ih:bookmarks:v1"

// Repo defines the repository contract for bookmarks
type Repo interface {
	All(ctx context.Context) ([]domain.Issue, error)
	Save(ctx context.Context, xs []domain.Issue) error
}

type (
	// KV implements the Repo binder over the key/value store
	KV struct{}

	store struct{ s kv.Store }
)

// NewKV creates a new key/value repository binder
func NewKV() storekit.Binder[Repo] { return KV{} }

// Bind binds a kv store to the Repo implementation
func (KV) Bind(s kv.Store) Repo { return &store{s: s} }

// All returns every bookmarked issue, newest first
// A missing document reads as an empty list
func (r *store) All(ctx context.Context) ([]domain.Issue, error) {
	var out []domain.Issue
	if _, err := r.s.Get(ctx, bookmarksKey, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Save replaces the bookmark list wholesale
func (r *store) Save(ctx context.Context, xs []domain.Issue) error {
	if xs == nil {
		xs = []domain.Issue{}
	}
	return r.s.Set(ctx, bookmarksKey, xs)
}
