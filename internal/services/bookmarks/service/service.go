// Package service contains bookmark workflows
package service

import (
	"context"

	"issuehound/internal/modkit/storekit"
	perr "issuehound/internal/platform/errors"
	"issuehound/internal/platform/store/kv"
	"issuehound/internal/services/bookmarks/domain"
	"issuehound/internal/services/bookmarks/repo"
)

// Service defines the service contract for bookmarks
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder storekit.Binder[repo.Repo]
	store  kv.Store
}

// New creates a new bookmarks service
func New(store kv.Store, binder storekit.Binder[repo.Repo]) *Svc {
	if store == nil {
		panic("bookmarks.Service requires a non nil Store")
	}
	if binder == nil {
		panic("bookmarks.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(store), binder: binder, store: store}
}

// List returns the bookmarked issues, newest first
func (s *Svc) List(ctx context.Context) ([]domain.Issue, error) {
	return s.Repo.All(ctx)
}

// Toggle adds the issue when absent and removes it when present
// New bookmarks are prepended so the list stays newest first
func (s *Svc) Toggle(ctx context.Context, in domain.ToggleInput) (domain.ToggleResult, error) {
	if in.Issue.ID == 0 {
		return domain.ToggleResult{}, perr.InvalidArgf("issue id is required")
	}
	xs, err := s.Repo.All(ctx)
	if err != nil {
		return domain.ToggleResult{}, err
	}
	kept := xs[:0:0]
	removed := false
	for _, x := range xs {
		if x.ID == in.Issue.ID {
			removed = true
			continue
		}
		kept = append(kept, x)
	}
	if !removed {
		kept = append([]domain.Issue{in.Issue}, kept...)
	}
	if err := s.Repo.Save(ctx, kept); err != nil {
		return domain.ToggleResult{}, err
	}
	return domain.ToggleResult{Bookmarked: !removed}, nil
}

// Remove drops the issue with the given id, a no-op when absent
func (s *Svc) Remove(ctx context.Context, id int64) error {
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
		return nil
	}
	return s.Repo.Save(ctx, kept)
}

// IsBookmarked reports whether the issue id is currently bookmarked
func (s *Svc) IsBookmarked(ctx context.Context, id int64) (bool, error) {
	xs, err := s.Repo.All(ctx)
	if err != nil {
		return false, err
	}
	for _, x := range xs {
		if x.ID == id {
			return true, nil
		}
	}
	return false, nil
}
