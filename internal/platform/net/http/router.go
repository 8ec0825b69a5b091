package http

import "net/http"

// Handler is the platform handler signature, every adapter normalizes to it
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the surface modules mount routes against
// Implementations wrap a concrete mux, see AdaptChi
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Put(path string, h Handler)
	Patch(path string, h Handler)
	Delete(path string, h Handler)
	Options(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	// Mux exposes the underlying handler for http.Server and tests
	Mux() http.Handler
}
