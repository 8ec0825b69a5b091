// Package module wires trending into the API using modkit
package module

import (
	"net/http"

	modkit "issuehound/internal/modkit"
	"issuehound/internal/modkit/httpkit"
	"issuehound/internal/platform/config"
	str "issuehound/internal/platform/strings"
	trendinghttp "issuehound/internal/services/trending/http"
	trendingsvc "issuehound/internal/services/trending/service"
)

// Options holds configuration settings for the trending module
type Options struct {
	PerPage int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	tf := cfg.Prefix("TRENDING_")
	return Options{
		PerPage: tf.MayInt("PER_PAGE", 6),
	}
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *trendingsvc.Svc
}

// New constructs a trending module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("trending"), modkit.WithPrefix("/trending")}, opts...)...)
	o := FromConfig(deps.Cfg)

	svc := trendingsvc.New(deps.GH, trendingsvc.Config{PerPage: o.PerPage})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptTrendingPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		trendinghttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
