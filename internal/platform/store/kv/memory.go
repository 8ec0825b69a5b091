package kv

import (
	"context"
	"encoding/json"
	"sync"

	perr "issuehound/internal/platform/errors"
)

// memStore keeps documents in a map; used for tests and as the degraded
// fallback when the on-disk store cannot be opened
type memStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
	nt   *notifier
}

// NewMemory returns an in-memory Store
func NewMemory() Store {
	return &memStore{docs: make(map[string][]byte), nt: newNotifier()}
}

// Get implements Store
func (s *memStore) Get(_ context.Context, key string, dest any) (bool, error) {
	s.mu.RLock()
	data, ok := s.docs[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, perr.Wrapf(err, perr.ErrorCodeStorage, "kv unmarshal %s", key)
	}
	return true, nil
}

// Set implements Store
func (s *memStore) Set(_ context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeStorage, "kv marshal %s", key)
	}
	s.mu.Lock()
	s.docs[key] = data
	s.mu.Unlock()
	s.nt.notify(key)
	return nil
}

// Delete implements Store
func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.docs, key)
	s.mu.Unlock()
	s.nt.notify(key)
	return nil
}

// OnChange implements Store
func (s *memStore) OnChange(key string, fn func()) (cancel func()) {
	return s.nt.subscribe(key, fn)
}

// Ping implements Store
func (s *memStore) Ping(_ context.Context) error { return nil }

// Close implements Store
func (s *memStore) Close() error { return nil }
