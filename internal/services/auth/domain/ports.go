package domain

import "context"

// ServicePort defines the service contract for auth
type ServicePort interface {
	Status(ctx context.Context) (Status, error)
	SetToken(ctx context.Context, in SetTokenInput) (Status, error)
	ClearToken(ctx context.Context) error
	Token(ctx context.Context) (string, error)
}
