// Package storekit binds domain repos to the key/value store seam
package storekit

import "issuehound/internal/platform/store/kv"

// Binder is a tiny factory that binds a domain repo to a specific kv.Store
type Binder[T any] interface {
	Bind(kv.Store) T
}

// BindFunc lets you create a Binder from a function
type BindFunc[T any] func(kv.Store) T

// Bind calls the underlying function
func (f BindFunc[T]) Bind(s kv.Store) T { return f(s) }

// RequireStore panics early on programmer error (nil store)
func RequireStore(s kv.Store) kv.Store {
	if s == nil {
		panic("storekit: nil Store")
	}
	return s
}

// MustBind is a convenience that validates s then binds
func MustBind[T any](b Binder[T], s kv.Store) T {
	return b.Bind(RequireStore(s))
}
