// Package service contains auth workflows
package service

import (
	"context"
	"strings"
	"sync"

	"issuehound/internal/adapters/github"
	"issuehound/internal/modkit/storekit"
	perr "issuehound/internal/platform/errors"
	"issuehound/internal/platform/store/kv"
	"issuehound/internal/services/auth/domain"
	"issuehound/internal/services/auth/repo"
)

// Verifier checks a candidate token against the GitHub API
// Satisfied by the adapter client
type Verifier interface {
	Viewer(ctx context.Context, token string) (github.User, []string, error)
}

// Service defines the service contract for auth
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder storekit.Binder[repo.Repo]
	store  kv.Store
	gh     Verifier
}

// New creates a new auth service
func New(store kv.Store, binder storekit.Binder[repo.Repo], gh Verifier) *Svc {
	if store == nil {
		panic("auth.Service requires a non nil Store")
	}
	if binder == nil {
		panic("auth.Service requires a non nil Repo binder")
	}
	if gh == nil {
		panic("auth.Service requires a non nil Verifier")
	}
	return &Svc{Repo: binder.Bind(store), binder: binder, store: store, gh: gh}
}

// Status reports the current authentication state
func (s *Svc) Status(ctx context.Context) (domain.Status, error) {
	tok, err := s.Repo.Token(ctx)
	if err != nil {
		return domain.Status{}, err
	}
	u, err := s.Repo.User(ctx)
	if err != nil {
		return domain.Status{}, err
	}
	scopes, err := s.Repo.Scopes(ctx)
	if err != nil {
		return domain.Status{}, err
	}
	return domain.Status{
		Authenticated: u != nil,
		TokenPresent:  tok != "",
		User:          u,
		Scopes:        scopes,
	}, nil
}

// SetToken stores the trimmed token and verifies it against the API.
// The token is persisted before verification so a transient API failure
// does not lose it. On verification failure the identity is cleared but
// the token stays, leaving requests unauthenticated until it verifies
func (s *Svc) SetToken(ctx context.Context, in domain.SetTokenInput) (domain.Status, error) {
	tok := strings.TrimSpace(in.Token)
	if tok == "" {
		return domain.Status{}, perr.InvalidArgf("token must not be empty")
	}
	if err := s.Repo.SetToken(ctx, tok); err != nil {
		return domain.Status{}, err
	}

	u, scopes, err := s.gh.Viewer(ctx, tok)
	if err != nil {
		if cerr := s.Repo.ClearIdentity(ctx); cerr != nil {
			return domain.Status{}, cerr
		}
		return domain.Status{TokenPresent: true}, perr.Wrapf(err, perr.ErrorCodeUnauthorized, "token verification failed")
	}

	if err := s.Repo.SetIdentity(ctx, u, scopes); err != nil {
		return domain.Status{}, err
	}
	return domain.Status{
		Authenticated: true,
		TokenPresent:  true,
		User:          &u,
		Scopes:        scopes,
	}, nil
}

// ClearToken removes the token and the verified identity
func (s *Svc) ClearToken(ctx context.Context) error {
	return s.Repo.ClearAll(ctx)
}

// Token returns the stored token, empty when absent
func (s *Svc) Token(ctx context.Context) (string, error) {
	return s.Repo.Token(ctx)
}

// TokenFunc returns a cached token source for the adapter client.
// The cache is invalidated by store change notification so SetToken and
// ClearToken take effect on the next request
func (s *Svc) TokenFunc() github.TokenSource {
	var mu sync.Mutex
	var cached string
	var fresh bool

	s.Repo.OnTokenChange(func() {
		mu.Lock()
		fresh = false
		mu.Unlock()
	})

	return func() string {
		mu.Lock()
		defer mu.Unlock()
		if !fresh {
			tok, err := s.Repo.Token(context.Background())
			if err != nil {
				return ""
			}
			cached, fresh = tok, true
		}
		return cached
	}
}
