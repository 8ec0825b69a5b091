// Package repo provides key/value access for auth state
package repo

import (
	"context"

	"issuehound/internal/adapters/github"
	"issuehound/internal/modkit/storekit"
	"issuehound/internal/platform/store/kv"
)

const (
	tokenKey  = "ih:auth_token:v1"
	userKey   = "ih:user:v1"
	scopesKey = "ih:scopes:v1"
)

// Repo defines the repository contract for auth state
type Repo interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	User(ctx context.Context) (*github.User, error)
	Scopes(ctx context.Context) ([]string, error)
	SetIdentity(ctx context.Context, u github.User, scopes []string) error

	// ClearIdentity removes the verified user and scopes but keeps the token
	ClearIdentity(ctx context.Context) error

	// ClearAll removes the token along with the identity
	ClearAll(ctx context.Context) error

	// OnTokenChange registers fn to run whenever the stored token changes
	OnTokenChange(fn func()) (cancel func())
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

func (r *store) Token(ctx context.Context) (string, error) {
	var tok string
	if _, err := r.s.Get(ctx, tokenKey, &tok); err != nil {
		return "", err
	}
	return tok, nil
}

func (r *store) SetToken(ctx context.Context, token string) error {
	return r.s.Set(ctx, tokenKey, token)
}

func (r *store) User(ctx context.Context) (*github.User, error) {
	var u github.User
	ok, err := r.s.Get(ctx, userKey, &u)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

func (r *store) Scopes(ctx context.Context) ([]string, error) {
	var xs []string
	if _, err := r.s.Get(ctx, scopesKey, &xs); err != nil {
		return nil, err
	}
	return xs, nil
}

func (r *store) SetIdentity(ctx context.Context, u github.User, scopes []string) error {
	if err := r.s.Set(ctx, userKey, u); err != nil {
		return err
	}
	if scopes == nil {
		scopes = []string{}
	}
	return r.s.Set(ctx, scopesKey, scopes)
}

func (r *store) ClearIdentity(ctx context.Context) error {
	if err := r.s.Delete(ctx, userKey); err != nil {
		return err
	}
	return r.s.Delete(ctx, scopesKey)
}

func (r *store) ClearAll(ctx context.Context) error {
	if err := r.ClearIdentity(ctx); err != nil {
		return err
	}
	return r.s.Delete(ctx, tokenKey)
}

func (r *store) OnTokenChange(fn func()) (cancel func()) {
	return r.s.OnChange(tokenKey, fn)
}
