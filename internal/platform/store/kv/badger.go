package kv

import (
	"context"
	"encoding/json"
	"errors"

	perr "issuehound/internal/platform/errors"
	"issuehound/internal/platform/logger"

	"github.com/dgraph-io/badger/v4"
)

// badgerStore is the on-disk implementation
type badgerStore struct {
	db *badger.DB
	nt *notifier
}

// Open opens the Badger database at path
// On open failure it logs a warning and degrades to the in-memory store so
// the process stays usable for the session
func Open(path string, log *logger.Logger) Store {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	opts.SyncWrites = true
	opts.CompactL0OnClose = true

	db, err := badger.Open(opts)
	if err != nil {
		if log != nil {
			log.Warn().Err(err).Str("path", path).Msg("kv open failed, degrading to memory store")
		}
		return NewMemory()
	}
	if log != nil {
		log.Info().Str("path", path).Msg("kv store opened")
	}
	return &badgerStore{db: db, nt: newNotifier()}
}

// Get implements Store
func (s *badgerStore) Get(_ context.Context, key string, dest any) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dest)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, perr.Wrapf(err, perr.ErrorCodeStorage, "kv get %s", key)
	}
	return true, nil
}

// Set implements Store
func (s *badgerStore) Set(_ context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeStorage, "kv marshal %s", key)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeStorage, "kv set %s", key)
	}
	s.nt.notify(key)
	return nil
}

// Delete implements Store
func (s *badgerStore) Delete(_ context.Context, key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeStorage, "kv delete %s", key)
	}
	s.nt.notify(key)
	return nil
}

// OnChange implements Store
func (s *badgerStore) OnChange(key string, fn func()) (cancel func()) {
	return s.nt.subscribe(key, fn)
}

// Ping implements Store
func (s *badgerStore) Ping(_ context.Context) error {
	if s.db.IsClosed() {
		return perr.Storagef("kv store closed")
	}
	return nil
}

// Close implements Store
func (s *badgerStore) Close() error { return s.db.Close() }
