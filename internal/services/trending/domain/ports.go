package domain

import "context"

// ServicePort defines the service contract for trending
type ServicePort interface {
	Top(ctx context.Context, query string) ([]Repo, error)
}
