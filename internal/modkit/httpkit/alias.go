// Package httpkit re-exports the platform http surface that modules need,
// so service packages do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "issuehound/internal/platform/net/http"
)

type (
	// Response lets a handler pick its own status instead of the default 200
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the routing seam modules mount onto
	Router = phttp.Router
)

// Param returns the named URL parameter from the route context
func Param(r *http.Request, key string) string { return phttp.Param(r, key) }

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return phttp.Error(err) }
