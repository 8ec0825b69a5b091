package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"issuehound/internal/adapters/github"
	"issuehound/internal/core/ratelimit"
	"issuehound/internal/platform/config"
	"issuehound/internal/platform/logger"
	"issuehound/internal/platform/store/kv"
	authrepo "issuehound/internal/services/auth/repo"
	authsvc "issuehound/internal/services/auth/service"
	bookmarksrepo "issuehound/internal/services/bookmarks/repo"
	bookmarkssvc "issuehound/internal/services/bookmarks/service"
	searchrepo "issuehound/internal/services/search/repo"
	searchsvc "issuehound/internal/services/search/service"
	trendingsvc "issuehound/internal/services/trending/service"
)

const rateLimitKey = "ih:ratelimit:v1"

// app holds the wired services shared by every command
// The CLI talks to the same internals as the API, no HTTP hop
type app struct {
	store     kv.Store
	gate      *ratelimit.Gate
	gh        *github.Client
	auth      *authsvc.Svc
	search    *searchsvc.Svc
	bookmarks *bookmarkssvc.Svc
	trending  *trendingsvc.Svc
}

var cli *app

var rootCmd = &cobra.Command{
	Use:   "issuehound",
	Short: "Search and bookmark GitHub issues from the terminal",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		root := config.New()
		ghCfg := root.Prefix("IH_GITHUB_")
		storeCfg := root.Prefix("IH_STORE_")
		l := logger.Get()

		var st kv.Store
		if storeCfg.MayBool("MEMORY", false) {
			st = kv.NewMemory()
		} else {
			st = kv.Open(storeCfg.MayString("PATH", defaultStorePath()), l)
		}

		gate := ratelimit.New()
		var snap ratelimit.Snapshot
		if ok, err := st.Get(cmd.Context(), rateLimitKey, &snap); err == nil && ok {
			gate.Hydrate(snap)
		}
		gate.SetPersist(func(s ratelimit.Snapshot) {
			_ = st.Set(cmd.Context(), rateLimitKey, s)
		})

		gh := github.NewClient(github.Options{
			BaseURL:   ghCfg.MayString("BASE_URL", "https://api.github.com"),
			UserAgent: ghCfg.MayString("USER_AGENT", "issuehound-cli"),
			Timeout:   ghCfg.MayDuration("TIMEOUT", 15*time.Second),
		}, gate)

		auth := authsvc.New(st, authrepo.NewKV(), gh)
		gh.SetTokenSource(auth.TokenFunc())

		cli = &app{
			store:     st,
			gate:      gate,
			gh:        gh,
			auth:      auth,
			search:    searchsvc.New(st, searchrepo.NewKV(), gh, gate, *l, searchsvc.Config{}),
			bookmarks: bookmarkssvc.New(st, bookmarksrepo.NewKV()),
			trending:  trendingsvc.New(gh, trendingsvc.Config{}),
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if cli != nil {
			return cli.store.Close()
		}
		return nil
	},
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./issuehound"
	}
	return home + "/.issuehound"
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// Execute runs the root command and returns an exit code
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
