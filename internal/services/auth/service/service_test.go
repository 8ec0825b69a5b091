package service

import (
	"context"
	"testing"

	"issuehound/internal/adapters/github"
	perr "issuehound/internal/platform/errors"
	"issuehound/internal/platform/store/kv"
	"issuehound/internal/services/auth/domain"
	"issuehound/internal/services/auth/repo"
)

type fakeVerifier struct {
	user   github.User
	scopes []string
	err    error
	calls  int
	seen   string
}

func (f *fakeVerifier) Viewer(_ context.Context, token string) (github.User, []string, error) {
	f.calls++
	f.seen = token
	return f.user, f.scopes, f.err
}

func newSvc(v *fakeVerifier) *Svc {
	return New(kv.NewMemory(), repo.NewKV(), v)
}

func TestSetTokenVerifiesAndStoresIdentity(t *testing.T) {
	t.Parallel()

	v := &fakeVerifier{user: github.User{ID: 1, Login: "octocat"}, scopes: []string{"repo", "read:user"}}
	s := newSvc(v)
	ctx := context.Background()

	st, err := s.SetToken(ctx, domain.SetTokenInput{Token: "  ghp_abc  "})
	if err != nil {
		t.Fatalf("set token: %v", err)
	}
	if v.seen != "ghp_abc" {
		t.Fatalf("token not trimmed before verification, got %q", v.seen)
	}
	if !st.Authenticated || !st.TokenPresent || st.User == nil || st.User.Login != "octocat" {
		t.Fatalf("unexpected status %+v", st)
	}
	if len(st.Scopes) != 2 {
		t.Fatalf("scopes not stored, got %+v", st.Scopes)
	}

	tok, err := s.Token(ctx)
	if err != nil || tok != "ghp_abc" {
		t.Fatalf("stored token = %q err = %v", tok, err)
	}
}

func TestSetTokenVerificationFailureKeepsToken(t *testing.T) {
	t.Parallel()

	good := &fakeVerifier{user: github.User{ID: 1, Login: "octocat"}}
	s := newSvc(good)
	ctx := context.Background()

	if _, err := s.SetToken(ctx, domain.SetTokenInput{Token: "ghp_old"}); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	good.err = perr.Unauthorizedf("bad credentials")
	if _, err := s.SetToken(ctx, domain.SetTokenInput{Token: "ghp_new"}); err == nil {
		t.Fatalf("expected verification error")
	}

	st, err := s.Status(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.Authenticated || st.User != nil {
		t.Fatalf("identity should be cleared, got %+v", st)
	}
	if !st.TokenPresent {
		t.Fatalf("token should survive a failed verification")
	}
	tok, _ := s.Token(ctx)
	if tok != "ghp_new" {
		t.Fatalf("expected ghp_new kept, got %q", tok)
	}
}

func TestClearTokenRemovesEverything(t *testing.T) {
	t.Parallel()

	s := newSvc(&fakeVerifier{user: github.User{ID: 1, Login: "octocat"}})
	ctx := context.Background()

	if _, err := s.SetToken(ctx, domain.SetTokenInput{Token: "ghp_abc"}); err != nil {
		t.Fatalf("set token: %v", err)
	}
	if err := s.ClearToken(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	st, err := s.Status(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.Authenticated || st.TokenPresent || st.User != nil || len(st.Scopes) != 0 {
		t.Fatalf("expected empty status, got %+v", st)
	}
}

func TestSetTokenRejectsEmpty(t *testing.T) {
	t.Parallel()

	s := newSvc(&fakeVerifier{})
	if _, err := s.SetToken(context.Background(), domain.SetTokenInput{Token: "   "}); err == nil {
		t.Fatalf("expected error for blank token")
	}
}

func TestTokenFuncCachesUntilChange(t *testing.T) {
	t.Parallel()

	s := newSvc(&fakeVerifier{user: github.User{Login: "octocat"}})
	ctx := context.Background()

	fn := s.TokenFunc()
	if got := fn(); got != "" {
		t.Fatalf("expected empty token before set, got %q", got)
	}

	if _, err := s.SetToken(ctx, domain.SetTokenInput{Token: "ghp_abc"}); err != nil {
		t.Fatalf("set token: %v", err)
	}
	if got := fn(); got != "ghp_abc" {
		t.Fatalf("token source missed the update, got %q", got)
	}

	if err := s.ClearToken(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := fn(); got != "" {
		t.Fatalf("token source missed the clear, got %q", got)
	}
}
