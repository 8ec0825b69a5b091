// Package http provides http transport for search
package http

import (
	stdhttp "net/http"

	coresearch "issuehound/internal/core/search"
	"issuehound/internal/modkit/httpkit"
	"issuehound/internal/services/search/domain"
	svc "issuehound/internal/services/search/service"
)

// Register mounts search endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.searchFromURL)
	httpkit.PostJSON[domain.SearchInput](r, "/", h.search)
	httpkit.PostJSON[domain.SearchInput](r, "/more", h.loadMore)
	httpkit.Get(r, "/history", h.history)
}

type handlers struct{ svc svc.Service }

func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}

// searchFromURL serves shareable links, filters arrive as query parameters
func (h *handlers) searchFromURL(r *stdhttp.Request) (any, error) {
	free, f := coresearch.ParseFilters(r.URL.Query())
	return h.svc.Search(r.Context(), domain.SearchInput{Query: free, Filters: f})
}

func (h *handlers) loadMore(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.LoadMore(r.Context(), in)
}

func (h *handlers) history(r *stdhttp.Request) (any, error) {
	return h.svc.History(r.Context())
}
