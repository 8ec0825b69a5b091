package module

import (
	"context"

	bookmarksdom "issuehound/internal/services/bookmarks/domain"
	bookmarkssvc "issuehound/internal/services/bookmarks/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptBookmarksPort adapts the bookmarks service to the domain port interface
type adaptBookmarksPort struct{ svc bookmarkssvc.Service }

// List implements the domain ServicePort interface
func (a adaptBookmarksPort) List(ctx context.Context) ([]bookmarksdom.Issue, error) {
	return a.svc.List(ctx)
}

// Toggle implements the domain ServicePort interface
func (a adaptBookmarksPort) Toggle(ctx context.Context, in bookmarksdom.ToggleInput) (bookmarksdom.ToggleResult, error) {
	return a.svc.Toggle(ctx, in)
}

// Remove implements the domain ServicePort interface
func (a adaptBookmarksPort) Remove(ctx context.Context, id int64) error {
	return a.svc.Remove(ctx, id)
}

// IsBookmarked implements the domain ServicePort interface
func (a adaptBookmarksPort) IsBookmarked(ctx context.Context, id int64) (bool, error) {
	return a.svc.IsBookmarked(ctx, id)
}
