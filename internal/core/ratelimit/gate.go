// Package ratelimit tracks the GitHub search rate-limit window so callers can
// stop issuing requests before the API starts rejecting them
package ratelimit

import (
	"sync"
	"time"
)

// Snapshot is the persisted form of the gate state
type Snapshot struct {
	Remaining int   `json:"remaining"`
	ResetAt   int64 `json:"reset_at"`
}

// defaultSnapshot is the state assumed before any response has been seen
// Remaining starts positive so a fresh process is allowed to try
func defaultSnapshot() Snapshot { return Snapshot{Remaining: 10, ResetAt: 0} }

// Gate is an injected service object shared by every GitHub caller
// It never sleeps or blocks; callers consult Limited before each request
type Gate struct {
	mu      sync.Mutex
	state   Snapshot
	persist func(Snapshot)

	now func() time.Time // test seam
}

// New returns a gate in the optimistic default state
func New() *Gate {
	return &Gate{state: defaultSnapshot(), now: time.Now}
}

// SetPersist installs a write-through hook invoked after every Record
// The hook runs on the recording goroutine and must not call back into the gate
func (g *Gate) SetPersist(fn func(Snapshot)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.persist = fn
}

// Hydrate replaces the gate state from a persisted snapshot
func (g *Gate) Hydrate(s Snapshot) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = s
}

// Record updates the window from response headers
// resetAt is the epoch second the window reopens
func (g *Gate) Record(remaining int, resetAt int64) {
	g.mu.Lock()
	g.state = Snapshot{Remaining: remaining, ResetAt: resetAt}
	fn := g.persist
	s := g.state
	g.mu.Unlock()

	if fn != nil {
		fn(s)
	}
}

// Limited reports whether the window is exhausted and has not yet reopened
func (g *Gate) Limited() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Remaining <= 0 && g.now().Unix() < g.state.ResetAt
}

// UntilReset returns how long until the window reopens, never negative
func (g *Gate) UntilReset() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	d := time.Unix(g.state.ResetAt, 0).Sub(g.now())
	if d < 0 {
		return 0
	}
	return d
}

// ResetAt returns the epoch second the window reopens
func (g *Gate) ResetAt() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.ResetAt
}

// Snapshot returns a copy of the current state
func (g *Gate) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}
