// Package api composes the service modules into the HTTP API
package api

import (
	"context"

	"issuehound/internal/adapters/github"
	"issuehound/internal/core/ratelimit"
	"issuehound/internal/platform/config"
	"issuehound/internal/platform/logger"
	phttp "issuehound/internal/platform/net/http"
	"issuehound/internal/platform/net/middleware"
	"issuehound/internal/platform/store/kv"

	"issuehound/internal/modkit"
	"issuehound/internal/modkit/httpkit"
	"issuehound/internal/modkit/module"

	authmod "issuehound/internal/services/auth/module"
	bookmarksmod "issuehound/internal/services/bookmarks/module"
	discoverymod "issuehound/internal/services/discovery/module"
	filtersmod "issuehound/internal/services/filters/module"
	metamod "issuehound/internal/services/meta/module"
	searchmod "issuehound/internal/services/search/module"
	trendingmod "issuehound/internal/services/trending/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  kv.Store
	Logger logger.Logger
	GH     *github.Client
	Gate   *ratelimit.Gate

	// Ctx bounds background work such as the search session refresher
	Ctx context.Context
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	if opt.Ctx == nil {
		opt.Ctx = context.Background()
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log:  opt.Logger,
		Cfg:  opt.Config,
		KV:   opt.Store,
		GH:   opt.GH,
		Gate: opt.Gate,
	}

	// Auth first: its token source feeds the GitHub client and decides
	// discovery sampling depth
	auth := authmod.New(deps)
	tokenFn := auth.Service().TokenFunc()
	opt.GH.SetTokenSource(tokenFn)

	search := searchmod.New(deps)

	// root-level probe for load balancers, outside the versioned prefix
	r.Use(middleware.Heartbeat("/health"))

	mods := []module.Module{
		metamod.New(deps),
		auth,
		search,
		bookmarksmod.New(deps),
		discoverymod.New(deps, tokenFn),
		trendingmod.New(deps),
		filtersmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	search.StartRefresh(opt.Ctx)
}
