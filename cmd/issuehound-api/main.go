package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"issuehound/internal/adapters/github"
	"issuehound/internal/core/ratelimit"
	"issuehound/internal/platform/config"
	"issuehound/internal/platform/logger"
	phttp "issuehound/internal/platform/net/http"
	"issuehound/internal/platform/store/kv"

	"issuehound/internal/services/api"
)

const rateLimitKey = "ih:ratelimit:v1"

func main() {
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (IH_API_*)
	root := config.New()
	apiCfg := root.Prefix("IH_API_")
	ghCfg := root.Prefix("IH_GITHUB_")
	storeCfg := root.Prefix("IH_STORE_")

	// bring up logging early
	l := logger.Get()

	// open the embedded store; falls back to memory on failure
	// IH_STORE_MEMORY=1 skips disk entirely, useful for throwaway runs
	var st kv.Store
	if storeCfg.MayBool("MEMORY", false) {
		st = kv.NewMemory()
	} else {
		st = kv.Open(storeCfg.MayString("PATH", "./data/issuehound"), l)
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// the gate survives restarts through the store
	gate := ratelimit.New()
	var snap ratelimit.Snapshot
	if ok, err := st.Get(context.Background(), rateLimitKey, &snap); err == nil && ok {
		gate.Hydrate(snap)
	}
	gate.SetPersist(func(s ratelimit.Snapshot) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := st.Set(ctx, rateLimitKey, s); err != nil {
			l.Warn().Err(err).Msg("rate limit snapshot persist failed")
		}
	})

	gh := github.NewClient(github.Options{
		BaseURL:   ghCfg.MayString("BASE_URL", "https://api.github.com"),
		UserAgent: ghCfg.MayString("USER_AGENT", "issuehound"),
		Timeout:   ghCfg.MayDuration("TIMEOUT", 15*time.Second),
	}, gate)

	// http server (reads IH_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config: apiCfg,
			Store:  st,
			Logger: *l,
			GH:     gh,
			Gate:   gate,
			Ctx:    ctx,
		},
	)

	// run
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
