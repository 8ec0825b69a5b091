package domain

import "context"

// ServicePort defines the service contract for saved filters
type ServicePort interface {
	List(ctx context.Context) ([]SavedFilter, error)
	Save(ctx context.Context, in SaveInput) (SavedFilter, error)
	Remove(ctx context.Context, id string) error
}
