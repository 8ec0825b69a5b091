// Package repo provides key/value access for saved filters
package repo

import (
	"context"

	"issuehound/internal/modkit/storekit"
	"issuehound/internal/platform/store/kv"
	"issuehound/internal/services/filters/domain"
)

const filtersKey = "ih:filters:v1"

// Repo defines the repository contract for saved filters
type Repo interface {
	All(ctx context.Context) ([]domain.SavedFilter, error)
	Save(ctx context.Context, xs []domain.SavedFilter) error
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

func (r *store) All(ctx context.Context) ([]domain.SavedFilter, error) {
	var xs []domain.SavedFilter
	if _, err := r.s.Get(ctx, filtersKey, &xs); err != nil {
		return nil, err
	}
	return xs, nil
}

func (r *store) Save(ctx context.Context, xs []domain.SavedFilter) error {
	if xs == nil {
		xs = []domain.SavedFilter{}
	}
	return r.s.Set(ctx, filtersKey, xs)
}
