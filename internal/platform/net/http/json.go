package http

import (
	"net/http"

	"issuehound/internal/platform/net/http/bind"
)

// JSONHandler binds the request body into T, runs fn, and envelopes the result.
// A handler that already returns a Response passes through untouched, which is
// how endpoints pick a non-200 status such as 201 or 204
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return envelope(fn(r, in))
	})
}

// JSONHandlerNoBody is JSONHandler for endpoints that take no request body
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		return envelope(fn(r))
	})
}

func envelope(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}
