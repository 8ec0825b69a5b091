package kv

import "sync"

// notifier fans writes out to per-key subscribers
// Callbacks run synchronously on the writing goroutine, so they must be cheap
type notifier struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]func()
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[string]map[int]func())}
}

func (n *notifier) subscribe(key string, fn func()) (cancel func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++
	if n.subs[key] == nil {
		n.subs[key] = make(map[int]func())
	}
	n.subs[key][id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs[key], id)
	}
}

func (n *notifier) notify(key string) {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.subs[key]))
	for _, fn := range n.subs[key] {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
