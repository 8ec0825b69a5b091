// Package service contains the trending repositories lookup
package service

import (
	"context"
	"strings"
	"time"

	"issuehound/internal/adapters/github"
	"issuehound/internal/services/trending/domain"
)

// RepoSearcher is the slice of the GitHub client used by trending
type RepoSearcher interface {
	SearchRepositories(ctx context.Context, q string, perPage int) (github.RepoSearchResult, error)
}

// Config for the trending service
type Config struct {
	PerPage int
}

// Service defines the service contract for trending
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	gh  RepoSearcher
	cfg Config

	now func() time.Time // test seam
}

// New creates a new trending service
func New(gh RepoSearcher, cfg Config) *Svc {
	if gh == nil {
		panic("trending.Service requires a non nil RepoSearcher")
	}
	if cfg.PerPage <= 0 {
		cfg.PerPage = 6
	}
	return &Svc{gh: gh, cfg: cfg, now: time.Now}
}

// Top returns the most starred public repositories for the query, or the
// most starred repositories created in the last 30 days when the query is
// empty
func (s *Svc) Top(ctx context.Context, query string) ([]domain.Repo, error) {
	q := strings.TrimSpace(query)
	if q != "" {
		q += " is:public"
	} else {
		q = "created:>" + s.now().UTC().AddDate(0, 0, -30).Format("2006-01-02")
	}
	res, err := s.gh.SearchRepositories(ctx, q, s.cfg.PerPage)
	if err != nil {
		return nil, err
	}
	return res.Items, nil
}
