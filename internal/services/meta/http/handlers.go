// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"issuehound/internal/core/ratelimit"
	"issuehound/internal/core/version"
	"issuehound/internal/modkit/httpkit"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Store       Pinger
	Gate        *ratelimit.Gate
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	// mount routes
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/limit", h.limit)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Now     string `json:"now"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"` // ok fail skipped
	Error  string `json:"error,omitempty"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"`
	Started string `json:"started"`
	Uptime  int64  `json:"uptime"`
}

// LimitResponse reports the shared rate-limit window
type LimitResponse struct {
	Remaining  int   `json:"remaining"`
	ResetAt    int64 `json:"reset_at"`
	Limited    bool  `json:"limited"`
	UntilReset int64 `json:"until_reset_ms"`
}

func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h *handlers) ready(_ *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), 2*time.Second)
	defer cancel()

	store := ReadyCheck{Name: "kv", Status: "skipped"}
	if h.deps.Store != nil {
		store.Status = "ok"
		if err := h.deps.Store.Ping(ctx); err != nil {
			store.Status = "fail"
			store.Error = err.Error()
		}
	}

	overall := "ok"
	if store.Status == "fail" {
		overall = "fail"
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{store},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

func (h *handlers) limit(_ *http.Request) (any, error) {
	s := h.deps.Gate.Snapshot()
	return LimitResponse{
		Remaining:  s.Remaining,
		ResetAt:    s.ResetAt,
		Limited:    h.deps.Gate.Limited(),
		UntilReset: h.deps.Gate.UntilReset().Milliseconds(),
	}, nil
}
