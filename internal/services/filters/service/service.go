// Package service contains saved-filter workflows
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	coresearch "issuehound/internal/core/search"
	"issuehound/internal/modkit/storekit"
	perr "issuehound/internal/platform/errors"
	"issuehound/internal/platform/store/kv"
	"issuehound/internal/services/filters/domain"
	"issuehound/internal/services/filters/repo"
)

// Service defines the service contract for saved filters
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder storekit.Binder[repo.Repo]
	store  kv.Store

	now func() time.Time // test seam
}

// New creates a new saved-filters service
func New(store kv.Store, binder storekit.Binder[repo.Repo]) *Svc {
	if store == nil {
		panic("filters.Service requires a non nil Store")
	}
	if binder == nil {
		panic("filters.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(store), binder: binder, store: store, now: time.Now}
}

// List returns saved filters, newest first
func (s *Svc) List(ctx context.Context) ([]domain.SavedFilter, error) {
	return s.Repo.All(ctx)
}

// Save persists the filter set under a fresh id, prepended so recency
// ordering matches bookmarks
func (s *Svc) Save(ctx context.Context, in domain.SaveInput) (domain.SavedFilter, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.SavedFilter{}, perr.InvalidArgf("filter name must not be empty")
	}
	xs, err := s.Repo.All(ctx)
	if err != nil {
		return domain.SavedFilter{}, err
	}
	sf := domain.SavedFilter{
		ID:        uuid.NewString(),
		Name:      name,
		Query:     in.Query,
		Filters:   in.Filters,
		Permalink: permalink(in.Query, in.Filters),
		CreatedAt: s.now().UTC(),
	}
	if err := s.Repo.Save(ctx, append([]domain.SavedFilter{sf}, xs...)); err != nil {
		return domain.SavedFilter{}, err
	}
	return sf, nil
}

// permalink renders the filter set as a shareable search path
func permalink(free string, f coresearch.Filters) string {
	v := coresearch.EncodeFilters(free, f)
	if len(v) == 0 {
		return "/search"
	}
	return "/search?" + v.Encode()
}

// Remove drops the filter with the given id
func (s *Svc) Remove(ctx context.Context, id string) error {
	xs, err := s.Repo.All(ctx)
	if err != nil {
		return err
	}
	kept := xs[:0:0]
	for _, x := range xs {
		if x.ID != id {
			kept = append(kept, x)
		}
	}
	if len(kept) == len(xs) {
		return perr.NotFoundf("no saved filter with id %s", id)
	}
	return s.Repo.Save(ctx, kept)
}
