package service

import (
	"context"
	"testing"

	"issuehound/internal/platform/store/kv"
	kit "issuehound/internal/platform/testkit"
	"issuehound/internal/services/bookmarks/domain"
	"issuehound/internal/services/bookmarks/repo"
)

func newSvc() *Svc {
	return New(kv.NewMemory(), repo.NewKV())
}

func issue(id int64, title string) domain.Issue {
	return domain.Issue{ID: id, Number: int(id), Title: title}
}

func TestToggleAddsNewestFirst(t *testing.T) {
	t.Parallel()

	s := newSvc()
	ctx := context.Background()

	for _, x := range []domain.Issue{issue(1, "first"), issue(2, "second")} {
		res, err := s.Toggle(ctx, domain.ToggleInput{Issue: x})
		if err != nil {
			t.Fatalf("toggle: %v", err)
		}
		if !res.Bookmarked {
			t.Fatalf("expected issue %d to be bookmarked", x.ID)
		}
	}

	xs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(xs) != 2 || xs[0].ID != 2 || xs[1].ID != 1 {
		t.Fatalf("expected newest first [2 1], got %+v", xs)
	}
}

func TestToggleTwiceRemoves(t *testing.T) {
	t.Parallel()

	s := newSvc()
	ctx := context.Background()

	if _, err := s.Toggle(ctx, domain.ToggleInput{Issue: issue(7, "x")}); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	res, err := s.Toggle(ctx, domain.ToggleInput{Issue: issue(7, "x")})
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if res.Bookmarked {
		t.Fatalf("second toggle should remove the bookmark")
	}

	xs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(xs) != 0 {
		t.Fatalf("expected empty list, got %+v", xs)
	}
}

func TestToggleRejectsZeroID(t *testing.T) {
	t.Parallel()

	s := newSvc()
	if _, err := s.Toggle(context.Background(), domain.ToggleInput{}); err == nil {
		t.Fatalf("expected error for zero issue id")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	s := newSvc()
	ctx := context.Background()

	if _, err := s.Toggle(ctx, domain.ToggleInput{Issue: issue(3, "keep")}); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := s.Remove(ctx, 3); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := s.Remove(ctx, 3); err != nil {
		t.Fatalf("remove again: %v", err)
	}

	ok, err := s.IsBookmarked(ctx, 3)
	if err != nil {
		t.Fatalf("is bookmarked: %v", err)
	}
	if ok {
		t.Fatalf("issue 3 should be gone")
	}
}

func TestNewPanicsOnNilStore(t *testing.T) {
	t.Parallel()

	kit.MustPanic(t, func() { _ = New(nil, repo.NewKV()) })
}
