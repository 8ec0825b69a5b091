package module

import (
	"context"

	searchdom "issuehound/internal/services/search/domain"
	searchsvc "issuehound/internal/services/search/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptSearchPort adapts the search service to the domain port interface
type adaptSearchPort struct{ svc *searchsvc.Svc }

// Search implements the domain ServicePort interface
func (a adaptSearchPort) Search(ctx context.Context, in searchdom.SearchInput) (searchdom.Result, error) {
	return a.svc.Search(ctx, in)
}

// LoadMore implements the domain ServicePort interface
func (a adaptSearchPort) LoadMore(ctx context.Context, in searchdom.SearchInput) (searchdom.Result, error) {
	return a.svc.LoadMore(ctx, in)
}

// History implements the domain ServicePort interface
func (a adaptSearchPort) History(ctx context.Context) ([]string, error) {
	return a.svc.History(ctx)
}
