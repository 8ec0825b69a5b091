package module

import (
	"context"

	filtersdom "issuehound/internal/services/filters/domain"
	filterssvc "issuehound/internal/services/filters/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptFiltersPort adapts the saved-filters service to the domain port interface
type adaptFiltersPort struct{ svc *filterssvc.Svc }

// List implements the domain ServicePort interface
func (a adaptFiltersPort) List(ctx context.Context) ([]filtersdom.SavedFilter, error) {
	return a.svc.List(ctx)
}

// Save implements the domain ServicePort interface
func (a adaptFiltersPort) Save(ctx context.Context, in filtersdom.SaveInput) (filtersdom.SavedFilter, error) {
	return a.svc.Save(ctx, in)
}

// Remove implements the domain ServicePort interface
func (a adaptFiltersPort) Remove(ctx context.Context, id string) error {
	return a.svc.Remove(ctx, id)
}
