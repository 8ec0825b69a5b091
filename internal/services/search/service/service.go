// Package service contains the search session orchestrator
package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"issuehound/internal/adapters/github"
	coresearch "issuehound/internal/core/search"
	"issuehound/internal/modkit/storekit"
	perr "issuehound/internal/platform/errors"
	"issuehound/internal/platform/logger"
	"issuehound/internal/platform/store/kv"
	"issuehound/internal/services/search/domain"
	"issuehound/internal/services/search/repo"
)

// Searcher is the slice of the GitHub client used by search sessions
type Searcher interface {
	SearchIssues(ctx context.Context, q, sort, order string, page int) (github.SearchResult, error)
}

// Limiter is the slice of the rate-limit gate used to suspend refresh
type Limiter interface {
	Limited() bool
	UntilReset() time.Duration
}

// Config for the search service
type Config struct {
	RefreshEvery time.Duration
	// SessionTTL is how long a session survives without a Search or
	// LoadMore touching it before the refresher evicts it
	SessionTTL time.Duration
}

// Service defines the service contract for search
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
// Sessions are keyed by a signature of the caller's input (free text plus
// filters plus sort and order); every new Search on a key bumps its
// generation and cancels the in-flight fetch
type Svc struct {
	Repo   repo.Repo
	binder storekit.Binder[repo.Repo]
	store  kv.Store
	gh     Searcher
	gate   Limiter
	log    logger.Logger
	cfg    Config

	mu       sync.Mutex
	sessions map[string]*session

	now func() time.Time // test seam
}

type session struct {
	query string
	sort  string
	order string

	generation uint64
	cancel     context.CancelFunc

	total       int
	pagesLoaded int
	items       []domain.Item
	index       map[int64]int // issue id to position in items

	touched time.Time // last Search or LoadMore, drives eviction
}

// New creates a new search service
func New(store kv.Store, binder storekit.Binder[repo.Repo], gh Searcher, gate Limiter, log logger.Logger, cfg Config) *Svc {
	if store == nil {
		panic("search.Service requires a non nil Store")
	}
	if binder == nil {
		panic("search.Service requires a non nil Repo binder")
	}
	if gh == nil {
		panic("search.Service requires a non nil Searcher")
	}
	if gate == nil {
		panic("search.Service requires a non nil Limiter")
	}
	if cfg.RefreshEvery <= 0 {
		cfg.RefreshEvery = 60 * time.Second
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 10 * time.Minute
	}
	return &Svc{
		Repo:     binder.Bind(store),
		binder:   binder,
		store:    store,
		gh:       gh,
		gate:     gate,
		log:      log,
		cfg:      cfg,
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// Search fetches page one for the given input, starting or restarting the
// session. A concurrent Search on the same key supersedes this one; the
// superseded call discards its response and reports a conflict
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.Result, error) {
	f := normalize(in.Filters)
	built := coresearch.BuildQuery(in.Query, f, s.now())
	key := sessionKey(in.Query, f)

	s.mu.Lock()
	sess, ok := s.sessions[key]
	if !ok {
		sess = &session{sort: f.Sort, order: f.Order, index: make(map[int64]int)}
		s.sessions[key] = sess
	}
	// pin the rendered query, LoadMore and refresh reuse it so a relative
	// since bound stays fixed for the life of this generation
	sess.query = built
	sess.touched = s.now()
	if sess.cancel != nil {
		sess.cancel()
	}
	sess.generation++
	gen := sess.generation
	cctx, cancel := context.WithCancel(ctx)
	sess.cancel = cancel
	s.mu.Unlock()

	res, err := s.gh.SearchIssues(cctx, built, f.Sort, f.Order, 1)
	cancel()
	if err != nil {
		return domain.Result{}, classify(err)
	}

	seen, err := s.Repo.SeenIDs(ctx)
	if err != nil {
		return domain.Result{}, err
	}

	s.mu.Lock()
	if sess.generation != gen {
		s.mu.Unlock()
		return domain.Result{}, perr.Conflictf("search superseded by a newer query")
	}
	sess.total = res.TotalCount
	sess.pagesLoaded = 1
	sess.items = sess.items[:0]
	sess.index = make(map[int64]int, len(res.Items))
	sess.merge(res.Items, seen)
	out := sess.snapshot()
	s.mu.Unlock()

	s.recordSideEffects(ctx, in.Query, res.Items)
	return out, nil
}

// LoadMore fetches the next page of an existing session with the identical
// key and folds it into the deduplicated item list
func (s *Svc) LoadMore(ctx context.Context, in domain.SearchInput) (domain.Result, error) {
	f := normalize(in.Filters)
	key := sessionKey(in.Query, f)

	s.mu.Lock()
	sess, ok := s.sessions[key]
	if !ok || sess.pagesLoaded == 0 {
		s.mu.Unlock()
		return domain.Result{}, perr.NotFoundf("no active session for this query")
	}
	sess.touched = s.now()
	if len(sess.items) >= sess.total {
		out := sess.snapshot()
		s.mu.Unlock()
		return out, nil
	}
	gen := sess.generation
	page := sess.pagesLoaded + 1
	built := sess.query
	s.mu.Unlock()

	res, err := s.gh.SearchIssues(ctx, built, f.Sort, f.Order, page)
	if err != nil {
		return domain.Result{}, classify(err)
	}

	seen, err := s.Repo.SeenIDs(ctx)
	if err != nil {
		return domain.Result{}, err
	}

	s.mu.Lock()
	if sess.generation != gen {
		s.mu.Unlock()
		return domain.Result{}, perr.Conflictf("search superseded by a newer query")
	}
	// total stays pinned to the page-one figure, later pages drift
	sess.pagesLoaded = page
	sess.merge(res.Items, seen)
	out := sess.snapshot()
	s.mu.Unlock()

	s.recordSideEffects(ctx, "", res.Items)
	return out, nil
}

// History returns past queries, most recent first
func (s *Svc) History(ctx context.Context) ([]string, error) {
	return s.Repo.History(ctx)
}

// RunRefresh re-fetches page one of every live session on a fixed interval
// to keep totals fresh, evicting sessions untouched for longer than the
// session TTL. Refresh is suspended while the gate is limited.
// Blocks until ctx is done, meant to run on its own goroutine
func (s *Svc) RunRefresh(ctx context.Context) {
	t := time.NewTicker(s.cfg.RefreshEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if s.gate.Limited() {
				s.log.Debug().Dur("until_reset", s.gate.UntilReset()).Msg("refresh suspended while rate limited")
				continue
			}
			s.refreshAll(ctx)
		}
	}
}

func (s *Svc) refreshAll(ctx context.Context) {
	cutoff := s.now().Add(-s.cfg.SessionTTL)

	s.mu.Lock()
	keys := make([]string, 0, len(s.sessions))
	for k, sess := range s.sessions {
		if sess.touched.Before(cutoff) {
			if sess.cancel != nil {
				sess.cancel()
			}
			delete(s.sessions, k)
			continue
		}
		keys = append(keys, k)
	}
	s.mu.Unlock()

	for _, k := range keys {
		s.mu.Lock()
		sess, ok := s.sessions[k]
		if !ok {
			s.mu.Unlock()
			continue
		}
		gen := sess.generation
		query, sort, order := sess.query, sess.sort, sess.order
		s.mu.Unlock()

		res, err := s.gh.SearchIssues(ctx, query, sort, order, 1)
		if err != nil {
			if github.IsRateLimited(err) {
				return
			}
			s.log.Warn().Err(err).Str("query", query).Msg("session refresh failed")
			continue
		}

		seen, err := s.Repo.SeenIDs(ctx)
		if err != nil {
			continue
		}

		s.mu.Lock()
		if sess.generation == gen {
			sess.total = res.TotalCount
			sess.merge(res.Items, seen)
		}
		s.mu.Unlock()
	}
}

// recordSideEffects appends to history and unions ids into the seen set.
// Best effort, failures are logged and never surface to the caller
func (s *Svc) recordSideEffects(ctx context.Context, freeText string, items []github.Issue) {
	if q := strings.TrimSpace(freeText); q != "" {
		if err := s.Repo.PushHistory(ctx, q); err != nil {
			s.log.Warn().Err(err).Msg("history write failed")
		}
	}
	if len(items) == 0 {
		return
	}
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	if err := s.Repo.AddSeen(ctx, ids); err != nil {
		s.log.Warn().Err(err).Msg("seen set write failed")
	}
}

// merge folds a page into the session, deduplicating by issue id.
// A duplicate keeps its first position but takes the newer document
func (sess *session) merge(items []github.Issue, seen map[int64]bool) {
	for _, it := range items {
		if i, ok := sess.index[it.ID]; ok {
			sess.items[i] = domain.Item{Issue: it, Seen: sess.items[i].Seen}
			continue
		}
		sess.index[it.ID] = len(sess.items)
		sess.items = append(sess.items, domain.Item{Issue: it, Seen: seen[it.ID]})
	}
}

func (sess *session) snapshot() domain.Result {
	items := make([]domain.Item, len(sess.items))
	copy(items, sess.items)
	return domain.Result{
		Query:       sess.query,
		Sort:        sess.sort,
		Order:       sess.order,
		Total:       sess.total,
		Items:       items,
		HasMore:     len(sess.items) < sess.total,
		PagesLoaded: sess.pagesLoaded,
	}
}

// sessionKey is a signature of the caller's input, not the rendered query.
// A relative since bound renders a fresh timestamp on every build, so keying
// on the built string would strand the session between Search and LoadMore
func sessionKey(free string, f coresearch.Filters) string {
	draft := ""
	if f.IsDraft != nil {
		draft = strconv.FormatBool(*f.IsDraft)
	}
	return strings.Join([]string{
		strings.TrimSpace(free),
		strings.Join(f.Labels, ","),
		f.Language,
		f.State,
		f.IssueType,
		f.Priority,
		f.LabelStatus,
		strconv.FormatBool(f.Unassigned),
		f.Author,
		f.Assignee,
		f.Mentions,
		f.Involves,
		f.Since,
		f.Comments,
		draft,
		f.Sort,
		f.Order,
	}, "\x00")
}

// normalize fills zero-value sort and order so the session key is stable
func normalize(f coresearch.Filters) coresearch.Filters {
	d := coresearch.Default()
	if f.State == "" {
		f.State = d.State
	}
	if f.Sort == "" {
		f.Sort = d.Sort
	}
	if f.Order == "" {
		f.Order = d.Order
	}
	return f
}

// classify maps adapter errors into the platform taxonomy for transport
func classify(err error) error {
	if github.IsRateLimited(err) {
		return perr.Wrapf(err, perr.ErrorCodeTooManyRequests, "rate limited until %d", github.ResetOf(err))
	}
	return err
}
