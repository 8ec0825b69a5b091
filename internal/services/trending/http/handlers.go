// Package http provides http transport for trending
package http

import (
	stdhttp "net/http"

	"issuehound/internal/modkit/httpkit"
	svc "issuehound/internal/services/trending/service"
)

// Register mounts trending endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.top)
}

type handlers struct{ svc svc.Service }

func (h *handlers) top(r *stdhttp.Request) (any, error) {
	return h.svc.Top(r.Context(), r.URL.Query().Get("q"))
}
