package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnauthorized, http.StatusUnauthorized},
		{ErrorCodeForbidden, http.StatusForbidden},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeStorage, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%d) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestMessageAndUnwrap(t *testing.T) {
	plain := New(ErrorCodeNotFound, "bookmark not found")
	if plain.Error() != "bookmark not found" {
		t.Fatalf("Error() = %q", plain.Error())
	}

	cause := stderrs.New("connection refused")
	wrapped := Wrapf(cause, ErrorCodeUnavailable, "github search")
	if wrapped.Error() != "github search: connection refused" {
		t.Fatalf("wrapped Error() = %q", wrapped.Error())
	}
	if !stderrs.Is(wrapped, cause) {
		t.Fatal("wrapped error must keep its cause in the chain")
	}

	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil Error() = %q", nilErr.Error())
	}
}

func TestCodeExtraction(t *testing.T) {
	err := Unauthorizedf("token rejected")
	if CodeOf(err) != ErrorCodeUnauthorized {
		t.Fatalf("CodeOf = %v", CodeOf(err))
	}
	if !IsCode(err, ErrorCodeUnauthorized) || IsCode(err, ErrorCodeNotFound) {
		t.Fatal("IsCode mismatch")
	}
	if HTTPStatus(err) != http.StatusUnauthorized {
		t.Fatalf("HTTPStatus = %d", HTTPStatus(err))
	}

	// foreign errors default to Unknown / 500
	foreign := stderrs.New("boom")
	if CodeOf(foreign) != ErrorCodeUnknown || HTTPStatus(foreign) != http.StatusInternalServerError {
		t.Fatalf("foreign: code=%v status=%d", CodeOf(foreign), HTTPStatus(foreign))
	}

	// when coded errors nest, the outermost code wins
	outer := Wrap(NotFoundf("filter missing"), ErrorCodeStorage, "load filters")
	if CodeOf(outer) != ErrorCodeStorage {
		t.Fatalf("outermost code must win, got %v", CodeOf(outer))
	}
}

func TestWireFrom(t *testing.T) {
	if w := WireFrom(nil); w.Code != 0 || w.Message != "" {
		t.Fatalf("nil wire = %+v", w)
	}

	w := WireFrom(Conflictf("bookmark already exists"))
	if w.Code != ErrorCodeConflict || w.Message != "bookmark already exists" {
		t.Fatalf("wire = %+v", w)
	}

	// the wire message excludes the wrapped cause, the full chain is log-only
	wrapped := Wrapf(stderrs.New("badger: closed"), ErrorCodeStorage, "save bookmark")
	if w := WireFrom(wrapped); w.Message != "save bookmark" {
		t.Fatalf("wire message = %q, want cause stripped", w.Message)
	}

	if w := WireFrom(stderrs.New("boom")); w.Code != ErrorCodeUnknown || w.Message != "boom" {
		t.Fatalf("foreign wire = %+v", w)
	}
}

func TestRetryable(t *testing.T) {
	if !Retryable(Newf(ErrorCodeUnavailable, "502 from github")) {
		t.Fatal("unavailable must be retryable")
	}
	if Retryable(Newf(ErrorCodeTooManyRequests, "rate limited")) {
		t.Fatal("rate limited must not be retryable")
	}
	if Retryable(nil) {
		t.Fatal("nil must not be retryable")
	}
}
