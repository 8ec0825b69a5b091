// Package http provides http transport for bookmarks
package http

import (
	stdhttp "net/http"
	"strconv"

	"issuehound/internal/modkit/httpkit"
	perr "issuehound/internal/platform/errors"
	"issuehound/internal/services/bookmarks/domain"
	svc "issuehound/internal/services/bookmarks/service"
)

// Register mounts bookmark endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.PutJSON[domain.ToggleInput](r, "/", h.toggle)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

func (h *handlers) toggle(r *stdhttp.Request, in domain.ToggleInput) (any, error) {
	return h.svc.Toggle(r.Context(), in)
}

func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	id, err := strconv.ParseInt(httpkit.Param(r, "id"), 10, 64)
	if err != nil {
		return nil, perr.InvalidArgf("id must be numeric")
	}
	if err := h.svc.Remove(r.Context(), id); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
