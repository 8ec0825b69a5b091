package modkit

import (
	"net/http"

	"issuehound/internal/modkit/httpkit"
)

// Built is the resolved module configuration after options are applied
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler

	// router hooks, never nil after Build
	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build folds the given options over defaults and returns the result.
// Module constructors call this with their own name and prefix first so
// callers can still override both
func Build(opts ...Option) Built {
	var s settings
	for _, o := range opts {
		o(&s)
	}
	if s.subrouter == nil {
		s.subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if s.register == nil {
		s.register = func(httpkit.Router) {}
	}
	return Built{
		Name:      s.name,
		Prefix:    s.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), s.mw...),
		Subrouter: s.subrouter,
		Register:  s.register,
	}
}
