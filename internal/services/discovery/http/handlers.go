// Package http provides http transport for discovery
package http

import (
	stdhttp "net/http"

	"issuehound/internal/modkit/httpkit"
	"issuehound/internal/services/discovery/domain"
	svc "issuehound/internal/services/discovery/service"
)

// Register mounts facet endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/labels", h.labels)
	httpkit.Get(r, "/languages", h.languages)
	httpkit.PostJSON[domain.CountsInput](r, "/counts", h.counts)
}

type handlers struct{ svc svc.Service }

// discoverInput reads the search context from query parameters
// repo_url repeats once per visible result
func discoverInput(r *stdhttp.Request) domain.DiscoverInput {
	q := r.URL.Query()
	return domain.DiscoverInput{
		Query:          q.Get("q"),
		RepositoryURLs: q["repo_url"],
	}
}

func (h *handlers) labels(r *stdhttp.Request) (any, error) {
	return h.svc.Labels(r.Context(), discoverInput(r))
}

func (h *handlers) languages(r *stdhttp.Request) (any, error) {
	return h.svc.Languages(r.Context(), discoverInput(r))
}

func (h *handlers) counts(r *stdhttp.Request, in domain.CountsInput) (any, error) {
	return h.svc.Counts(r.Context(), in)
}
