// Package http provides http transport for saved filters
package http

import (
	stdhttp "net/http"

	"issuehound/internal/modkit/httpkit"
	"issuehound/internal/services/filters/domain"
	svc "issuehound/internal/services/filters/service"
)

// Register mounts saved-filter endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.PutJSON[domain.SaveInput](r, "/", h.save)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

func (h *handlers) save(r *stdhttp.Request, in domain.SaveInput) (any, error) {
	out, err := h.svc.Save(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	if err := h.svc.Remove(r.Context(), httpkit.Param(r, "id")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
