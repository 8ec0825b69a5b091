package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Param returns the named URL parameter from the route context
func Param(r *http.Request, key string) string { return chi.URLParam(r, key) }
