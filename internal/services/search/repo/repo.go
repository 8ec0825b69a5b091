// Package repo provides key/value access for search history and seen ids
package repo

import (
	"context"

	"issuehound/internal/modkit/storekit"
	"issuehound/internal/platform/store/kv"
)

const (
	historyKey = "ih:history:v1"
	seenKey    = "ih:seen:v1"
)

// HistoryCap bounds the persisted search history length
const HistoryCap = 50

// Repo defines the repository contract for search side state
type Repo interface {
	History(ctx context.Context) ([]string, error)

	// PushHistory prepends q, dropping any earlier occurrence and
	// truncating to HistoryCap
	PushHistory(ctx context.Context, q string) error

	SeenIDs(ctx context.Context) (map[int64]bool, error)

	// AddSeen unions ids into the persisted seen set
	AddSeen(ctx context.Context, ids []int64) error
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

func (r *store) History(ctx context.Context) ([]string, error) {
	var xs []string
	if _, err := r.s.Get(ctx, historyKey, &xs); err != nil {
		return nil, err
	}
	return xs, nil
}

func (r *store) PushHistory(ctx context.Context, q string) error {
	xs, err := r.History(ctx)
	if err != nil {
		return err
	}
	out := make([]string, 0, len(xs)+1)
	out = append(out, q)
	for _, x := range xs {
		if x != q {
			out = append(out, x)
		}
	}
	if len(out) > HistoryCap {
		out = out[:HistoryCap]
	}
	return r.s.Set(ctx, historyKey, out)
}

func (r *store) SeenIDs(ctx context.Context) (map[int64]bool, error) {
	var ids []int64
	if _, err := r.s.Get(ctx, seenKey, &ids); err != nil {
		return nil, err
	}
	out := make(map[int64]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (r *store) AddSeen(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	seen, err := r.SeenIDs(ctx)
	if err != nil {
		return err
	}
	changed := false
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	flat := make([]int64, 0, len(seen))
	for id := range seen {
		flat = append(flat, id)
	}
	return r.s.Set(ctx, seenKey, flat)
}
