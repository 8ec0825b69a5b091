// Package net carries request-scoped context plumbing shared by transports
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest annotates ctx with the request id, stored under chi's key so
// chimw.GetReqID and our readers agree
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return ctx
}

// RequestID returns the request id on the context, empty when absent
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}
