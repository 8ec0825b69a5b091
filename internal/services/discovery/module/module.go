// Package module wires discovery into the API using modkit
package module

import (
	"net/http"

	"issuehound/internal/adapters/github"
	modkit "issuehound/internal/modkit"
	"issuehound/internal/modkit/httpkit"
	str "issuehound/internal/platform/strings"
	discoveryhttp "issuehound/internal/services/discovery/http"
	discoveryrepo "issuehound/internal/services/discovery/repo"
	discoverysvc "issuehound/internal/services/discovery/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *discoverysvc.Svc
}

// New constructs a discovery module. The token source decides authenticated
// sampling depth and comes from the auth module
func New(deps modkit.Deps, token github.TokenSource, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("discovery"), modkit.WithPrefix("/facets")}, opts...)...)
	o := FromConfig(deps.Cfg)

	repo := discoveryrepo.NewKV()
	svc := discoverysvc.New(deps.KV, repo, deps.GH, token, deps.Log, discoverysvc.Config{
		LabelSample:        o.LabelSample,
		LabelSampleAnon:    o.LabelSampleAnon,
		LabelWidth:         o.LabelWidth,
		LanguageSample:     o.LanguageSample,
		LanguageSampleAnon: o.LanguageSampleAnon,
		LanguageWidth:      o.LanguageWidth,
		TopRepos:           o.TopRepos,
		BatchPause:         o.BatchPause,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptDiscoveryPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		discoveryhttp.Register(r, m.svc)
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
