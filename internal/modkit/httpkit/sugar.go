package httpkit

import (
	"net/http"

	phttp "issuehound/internal/platform/net/http"
)

// Verb sugar for module route tables. Handlers return plain values and get
// enveloped, or return a Response to pick their own status

// Get mounts a body-less JSON handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, h)
}

// Delete mounts a body-less JSON handler under DELETE
func Delete(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.DeleteJSON(r, path, h)
}

// PostJSON mounts a typed JSON handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}

// PutJSON mounts a typed JSON handler under PUT
func PutJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PutJSON(r, path, h)
}
