package service

import (
	"context"
	"testing"
	"time"

	"issuehound/internal/adapters/github"
)

type fakeRepoSearch struct {
	q       string
	perPage int
	items   []github.Repo
}

func (f *fakeRepoSearch) SearchRepositories(_ context.Context, q string, perPage int) (github.RepoSearchResult, error) {
	f.q, f.perPage = q, perPage
	return github.RepoSearchResult{TotalCount: len(f.items), Items: f.items}, nil
}

func TestTopWithQuery(t *testing.T) {
	t.Parallel()

	gh := &fakeRepoSearch{items: []github.Repo{{FullName: "octo/repo"}}}
	s := New(gh, Config{})

	out, err := s.Top(context.Background(), "  web framework ")
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if gh.q != "web framework is:public" {
		t.Fatalf("query = %q", gh.q)
	}
	if gh.perPage != 6 {
		t.Fatalf("per page = %d, want 6", gh.perPage)
	}
	if len(out) != 1 || out[0].FullName != "octo/repo" {
		t.Fatalf("items = %+v", out)
	}
}

func TestTopWithoutQueryUsesRecentWindow(t *testing.T) {
	t.Parallel()

	gh := &fakeRepoSearch{}
	s := New(gh, Config{})
	s.now = func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }

	if _, err := s.Top(context.Background(), ""); err != nil {
		t.Fatalf("top: %v", err)
	}
	if gh.q != "created:>2025-05-16" {
		t.Fatalf("query = %q", gh.q)
	}
}
