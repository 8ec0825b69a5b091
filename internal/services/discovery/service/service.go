// Package service contains the label and language discovery engine
package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"issuehound/internal/adapters/github"
	"issuehound/internal/core/facets"
	"issuehound/internal/modkit/storekit"
	"issuehound/internal/platform/logger"
	"issuehound/internal/platform/store/kv"
	"issuehound/internal/services/discovery/domain"
	"issuehound/internal/services/discovery/repo"
)

// Sampler is the slice of the GitHub client used by discovery
type Sampler interface {
	SearchRepositories(ctx context.Context, q string, perPage int) (github.RepoSearchResult, error)
	RepoLanguages(ctx context.Context, fullName string) (map[string]int64, error)
	RepoLabels(ctx context.Context, fullName string) ([]github.Label, error)
	FacetCounts(ctx context.Context, queries map[string]string) (map[string]int, error)
}

// Config bounds how much API traffic a discovery pass may generate
// Anonymous sampling is forced sequential
type Config struct {
	LabelSample     int
	LabelSampleAnon int
	LabelWidth      int

	LanguageSample     int
	LanguageSampleAnon int
	LanguageWidth      int

	TopRepos   int
	BatchPause time.Duration
}

func (c *Config) defaults() {
	if c.LabelSample <= 0 {
		c.LabelSample = 5
	}
	if c.LabelSampleAnon <= 0 {
		c.LabelSampleAnon = 2
	}
	if c.LabelWidth <= 0 {
		c.LabelWidth = 2
	}
	if c.LanguageSample <= 0 {
		c.LanguageSample = 10
	}
	if c.LanguageSampleAnon <= 0 {
		c.LanguageSampleAnon = 3
	}
	if c.LanguageWidth <= 0 {
		c.LanguageWidth = 3
	}
	if c.TopRepos <= 0 {
		c.TopRepos = 3
	}
	if c.BatchPause <= 0 {
		c.BatchPause = 100 * time.Millisecond
	}
}

// Service defines the service contract for discovery
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder storekit.Binder[repo.Repo]
	store  kv.Store
	gh     Sampler
	token  github.TokenSource
	log    logger.Logger
	cfg    Config
	pace   *rate.Limiter
}

// New creates a new discovery service
func New(store kv.Store, binder storekit.Binder[repo.Repo], gh Sampler, token github.TokenSource, log logger.Logger, cfg Config) *Svc {
	if store == nil {
		panic("discovery.Service requires a non nil Store")
	}
	if binder == nil {
		panic("discovery.Service requires a non nil Repo binder")
	}
	if gh == nil {
		panic("discovery.Service requires a non nil Sampler")
	}
	if token == nil {
		token = func() string { return "" }
	}
	cfg.defaults()
	return &Svc{
		Repo:   binder.Bind(store),
		binder: binder,
		store:  store,
		gh:     gh,
		token:  token,
		log:    log,
		cfg:    cfg,
		pace:   rate.NewLimiter(rate.Every(cfg.BatchPause), 1),
	}
}

// Labels builds the tiered label list for the current search context.
// Sampling is best effort: a repo that errors contributes nothing and the
// pass never fails because of it
func (s *Svc) Labels(ctx context.Context, in domain.DiscoverInput) ([]domain.TieredLabel, error) {
	authed := s.token() != ""
	persisted, err := s.Repo.Labels(ctx)
	if err != nil {
		return nil, err
	}

	var sampled []facets.Label
	if repos, ok := s.candidates(ctx, in, authed); ok {
		n, width := s.cfg.LabelSample, s.cfg.LabelWidth
		if !authed {
			n, width = s.cfg.LabelSampleAnon, 1
		}
		sampled = s.sampleLabels(ctx, head(repos, n), width)

		if next, changed := facets.AccumulateLabels(persisted, sampled); changed {
			if err := s.Repo.SaveLabels(ctx, next); err != nil {
				s.log.Warn().Err(err).Msg("label persist failed")
			}
		}
	}

	return facets.MergeLabels(persisted, sampled, facets.StaticLabels), nil
}

// Languages builds the display language list, sampled usage first then every
// known language alphabetically
func (s *Svc) Languages(ctx context.Context, in domain.DiscoverInput) ([]string, error) {
	authed := s.token() != ""
	persisted, err := s.Repo.Languages(ctx)
	if err != nil {
		return nil, err
	}

	var ranked []string
	if repos, ok := s.candidates(ctx, in, authed); ok {
		n, width := s.cfg.LanguageSample, s.cfg.LanguageWidth
		if !authed {
			n, width = s.cfg.LanguageSampleAnon, 1
		}
		ranked = s.sampleLanguages(ctx, head(repos, n), width)

		if next, changed := facets.AccumulateLanguages(persisted, ranked); changed {
			if err := s.Repo.SaveLanguages(ctx, next); err != nil {
				s.log.Warn().Err(err).Msg("language persist failed")
			}
		}
	}

	known := append(append([]string(nil), persisted...), facets.FallbackLanguages...)
	return facets.MergeLanguages(ranked, known), nil
}

// Counts resolves per-facet issue counts in one GraphQL round trip
func (s *Svc) Counts(ctx context.Context, in domain.CountsInput) (map[string]int, error) {
	return s.gh.FacetCounts(ctx, in.Queries)
}

// candidates assembles the repo sample pool: repos referenced by the current
// results plus, when authenticated with a non-trivial query, the top starred
// matches. ok is false when there is nothing worth sampling
func (s *Svc) candidates(ctx context.Context, in domain.DiscoverInput, authed bool) ([]string, bool) {
	repos := facets.ExtractRepositories(in.RepositoryURLs)
	q := strings.TrimSpace(in.Query)

	if authed && len(q) > 2 {
		if rs, err := s.gh.SearchRepositories(ctx, q, s.cfg.TopRepos); err == nil {
			have := make(map[string]struct{}, len(repos))
			for _, r := range repos {
				have[r] = struct{}{}
			}
			for _, r := range rs.Items {
				if _, dup := have[r.FullName]; !dup {
					repos = append(repos, r.FullName)
				}
			}
		} else {
			s.log.Debug().Err(err).Msg("top repo seeding skipped")
		}
	}

	return repos, len(q) > 2 || len(repos) > 0
}

// sampleLabels fetches label lists batch by batch, width repos at a time,
// pausing between batches. Results keep repo order so first-seen casing is
// deterministic
func (s *Svc) sampleLabels(ctx context.Context, repos []string, width int) []facets.Label {
	perRepo := make([][]facets.Label, len(repos))

	s.batches(ctx, len(repos), width, func(gctx context.Context, i int) {
		ls, err := s.gh.RepoLabels(gctx, repos[i])
		if err != nil {
			return
		}
		out := make([]facets.Label, 0, len(ls))
		for _, l := range ls {
			out = append(out, facets.Label{Name: l.Name, Color: l.Color})
		}
		perRepo[i] = out
	})

	var flat []facets.Label
	for _, xs := range perRepo {
		flat = append(flat, xs...)
	}
	deduped, _ := facets.AccumulateLabels(nil, flat)
	return deduped
}

// sampleLanguages sums language bytes across the sampled repos and ranks
// them by usage
func (s *Svc) sampleLanguages(ctx context.Context, repos []string, width int) []string {
	perRepo := make([]map[string]int64, len(repos))

	s.batches(ctx, len(repos), width, func(gctx context.Context, i int) {
		m, err := s.gh.RepoLanguages(gctx, repos[i])
		if err != nil {
			return
		}
		perRepo[i] = m
	})

	sum := make(map[string]int64)
	for _, m := range perRepo {
		for lang, b := range m {
			sum[lang] += b
		}
	}
	if len(sum) == 0 {
		return nil
	}
	return facets.RankByBytes(sum)
}

// batches runs fn over [0,n) width at a time, waiting out the pace limiter
// between batches. Individual failures are the callback's problem
func (s *Svc) batches(ctx context.Context, n, width int, fn func(ctx context.Context, i int)) {
	for start := 0; start < n; start += width {
		end := min(start+width, n)

		g, gctx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			g.Go(func() error {
				fn(gctx, i)
				return nil
			})
		}
		_ = g.Wait()

		if end < n {
			if err := s.pace.Wait(ctx); err != nil {
				return
			}
		}
	}
}

func head(xs []string, n int) []string {
	if len(xs) <= n {
		return xs
	}
	return xs[:n]
}
