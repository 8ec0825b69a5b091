package modkit

import (
	"net/http"

	phttp "issuehound/internal/platform/net/http"
)

// Option adjusts how a module is assembled by Build
type Option func(*settings)

type settings struct {
	name      string
	prefix    string
	mw        []func(http.Handler) http.Handler
	subrouter func(phttp.Router) phttp.Router
	register  func(phttp.Router)
}

// WithName sets the module name used in logs and the ports registry
func WithName(name string) Option {
	return func(s *settings) { s.name = name }
}

// WithPrefix sets the path prefix the module mounts under
func WithPrefix(prefix string) Option {
	return func(s *settings) { s.prefix = prefix }
}

// WithMiddlewares appends middleware applied to every route of the module
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(s *settings) { s.mw = append(s.mw, mw...) }
}

// WithSubrouter swaps in a caller-built subrouter before routes register,
// used by tests and by callers that need to wrap the module's router
func WithSubrouter(fn func(phttp.Router) phttp.Router) Option {
	return func(s *settings) { s.subrouter = fn }
}

// WithRegister adds extra endpoints after the module's own routes
func WithRegister(fn func(phttp.Router)) Option {
	return func(s *settings) { s.register = fn }
}
