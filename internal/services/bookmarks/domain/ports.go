package domain

import "context"

// ServicePort defines the service contract for bookmarks
type ServicePort interface {
	List(ctx context.Context) ([]Issue, error)
	Toggle(ctx context.Context, in ToggleInput) (ToggleResult, error)
	Remove(ctx context.Context, id int64) error
	IsBookmarked(ctx context.Context, id int64) (bool, error)
}
