package module

import (
	"context"

	discoverydom "issuehound/internal/services/discovery/domain"
	discoverysvc "issuehound/internal/services/discovery/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptDiscoveryPort adapts the discovery service to the domain port interface
type adaptDiscoveryPort struct{ svc *discoverysvc.Svc }

// Labels implements the domain ServicePort interface
func (a adaptDiscoveryPort) Labels(ctx context.Context, in discoverydom.DiscoverInput) ([]discoverydom.TieredLabel, error) {
	return a.svc.Labels(ctx, in)
}

// Languages implements the domain ServicePort interface
func (a adaptDiscoveryPort) Languages(ctx context.Context, in discoverydom.DiscoverInput) ([]string, error) {
	return a.svc.Languages(ctx, in)
}

// Counts implements the domain ServicePort interface
func (a adaptDiscoveryPort) Counts(ctx context.Context, in discoverydom.CountsInput) (map[string]int, error) {
	return a.svc.Counts(ctx, in)
}
