package module

import (
	"context"

	trendingdom "issuehound/internal/services/trending/domain"
	trendingsvc "issuehound/internal/services/trending/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptTrendingPort adapts the trending service to the domain port interface
type adaptTrendingPort struct{ svc *trendingsvc.Svc }

// Top implements the domain ServicePort interface
func (a adaptTrendingPort) Top(ctx context.Context, query string) ([]trendingdom.Repo, error) {
	return a.svc.Top(ctx, query)
}
