// Package http provides http transport for auth
package http

import (
	stdhttp "net/http"

	"issuehound/internal/modkit/httpkit"
	"issuehound/internal/services/auth/domain"
	svc "issuehound/internal/services/auth/service"
)

// Register mounts auth endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.status)
	httpkit.PutJSON[domain.SetTokenInput](r, "/token", h.setToken)
	httpkit.Delete(r, "/token", h.clearToken)
}

type handlers struct{ svc svc.Service }

func (h *handlers) status(r *stdhttp.Request) (any, error) {
	return h.svc.Status(r.Context())
}

func (h *handlers) setToken(r *stdhttp.Request, in domain.SetTokenInput) (any, error) {
	return h.svc.SetToken(r.Context(), in)
}

func (h *handlers) clearToken(r *stdhttp.Request) (any, error) {
	if err := h.svc.ClearToken(r.Context()); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
