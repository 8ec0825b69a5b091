package module

import (
	"context"

	authdom "issuehound/internal/services/auth/domain"
	authsvc "issuehound/internal/services/auth/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptAuthPort adapts the auth service to the domain port interface
type adaptAuthPort struct{ svc *authsvc.Svc }

// Status implements the domain ServicePort interface
func (a adaptAuthPort) Status(ctx context.Context) (authdom.Status, error) {
	return a.svc.Status(ctx)
}

// SetToken implements the domain ServicePort interface
func (a adaptAuthPort) SetToken(ctx context.Context, in authdom.SetTokenInput) (authdom.Status, error) {
	return a.svc.SetToken(ctx, in)
}

// ClearToken implements the domain ServicePort interface
func (a adaptAuthPort) ClearToken(ctx context.Context) error {
	return a.svc.ClearToken(ctx)
}

// Token implements the domain ServicePort interface
func (a adaptAuthPort) Token(ctx context.Context) (string, error) {
	return a.svc.Token(ctx)
}
