// Package repo provides key/value access for discovered facets
package repo

import (
	"context"

	"issuehound/internal/core/facets"
	"issuehound/internal/modkit/storekit"
	"issuehound/internal/platform/store/kv"
)

const (
	labelsKey    = "ih:labels:v1"
	languagesKey = "ih:languages:v1"
)

// Repo defines the repository contract for the persisted discovery sets
type Repo interface {
	Labels(ctx context.Context) ([]facets.Label, error)
	SaveLabels(ctx context.Context, xs []facets.Label) error
	Languages(ctx context.Context) ([]string, error)
	SaveLanguages(ctx context.Context, xs []string) error
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

func (r *store) Labels(ctx context.Context) ([]facets.Label, error) {
	var xs []facets.Label
	if _, err := r.s.Get(ctx, labelsKey, &xs); err != nil {
		return nil, err
	}
	return xs, nil
}

func (r *store) SaveLabels(ctx context.Context, xs []facets.Label) error {
	return r.s.Set(ctx, labelsKey, xs)
}

func (r *store) Languages(ctx context.Context) ([]string, error) {
	var xs []string
	if _, err := r.s.Get(ctx, languagesKey, &xs); err != nil {
		return nil, err
	}
	return xs, nil
}

func (r *store) SaveLanguages(ctx context.Context, xs []string) error {
	return r.s.Set(ctx, languagesKey, xs)
}
