package github

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	perr "issuehound/internal/platform/errors"
)

// RateLimitError signals an exhausted rate-limit window, either observed
// locally via the gate or reported by a 403/429 response
type RateLimitError struct {
	// ResetAt is the epoch second the window reopens, zero when unknown
	ResetAt int64
}

// Error interface
func (e *RateLimitError) Error() string {
	return fmt.Sprintf("github rate limited until %d", e.ResetAt)
}

// Code maps the error into the platform taxonomy
func (e *RateLimitError) Code() perr.ErrorCode { return perr.ErrorCodeTooManyRequests }

// StatusError wraps unexpected non-2xx HTTP responses from GitHub
type StatusError struct {
	Status int
	Err    error
}

// Error interface
func (e *StatusError) Error() string { return e.Err.Error() }

// Unwrap interface
func (e *StatusError) Unwrap() error { return e.Err }

// HTTPStatus interface
func (e *StatusError) HTTPStatus() int { return e.Status }

// parseRateHeaders extracts the limit window from response headers
// ok is false when the response carried no limit headers
func parseRateHeaders(h http.Header) (remaining int, resetAt int64, ok bool) {
	rem := h.Get("X-RateLimit-Remaining")
	rst := h.Get("X-RateLimit-Reset")
	if rem == "" || rst == "" {
		return 0, 0, false
	}
	return atoi(rem), int64(atoi(rst)), true
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	i, _ := strconv.Atoi(s)
	return i
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}

// IsRateLimited reports whether err is a rate-limit rejection
func IsRateLimited(err error) bool {
	var rle *RateLimitError
	return errors.As(err, &rle)
}

// ResetOf extracts the reset epoch second from a rate-limit error
func ResetOf(err error) int64 {
	var rle *RateLimitError
	if errors.As(err, &rle) {
		return rle.ResetAt
	}
	return 0
}

// IsTransient reports whether err is worth one more attempt
func IsTransient(err error) bool {
	return perr.Retryable(err)
}
