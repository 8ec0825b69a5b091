package domain

import "context"

// ServicePort defines the service contract for discovery
type ServicePort interface {
	Labels(ctx context.Context, in DiscoverInput) ([]TieredLabel, error)
	Languages(ctx context.Context, in DiscoverInput) ([]string, error)
	Counts(ctx context.Context, in CountsInput) (map[string]int, error)
}
