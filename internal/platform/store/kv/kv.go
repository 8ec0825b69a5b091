// Package kv provides a small namespaced JSON document store with change
// notification, backed by Badger on disk with an in-memory fallback
package kv

import "context"

// Store is the persistence seam used by service repos
// Values are JSON documents addressed by versioned string keys
type Store interface {
	// Get unmarshals the document at key into dest
	// Returns (false, nil) when the key does not exist
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set marshals value and writes it at key, then notifies subscribers
	Set(ctx context.Context, key string, value any) error

	// Delete removes key if present, then notifies subscribers
	Delete(ctx context.Context, key string) error

	// OnChange registers fn to run after every successful write or delete
	// of key. The returned cancel removes the subscription
	OnChange(key string, fn func()) (cancel func())

	// Ping reports whether the backing store is usable
	Ping(ctx context.Context) error

	// Close releases the backing store
	Close() error
}
