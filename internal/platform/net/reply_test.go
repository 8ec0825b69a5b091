package net_test

import (
	"net/http"
	"testing"

	perr "issuehound/internal/platform/errors"
	pnet "issuehound/internal/platform/net"
)

func TestErrorNilMeansOK(t *testing.T) {
	status, w := pnet.Error(nil, "req-1")

	if status != http.StatusOK || w.StatusCode != http.StatusOK {
		t.Fatalf("status = %d wire = %+v", status, w)
	}
	if w.RequestID != "req-1" {
		t.Fatalf("request id = %q", w.RequestID)
	}
	if w.Error != "" || w.Code != 0 {
		t.Fatalf("expected clean envelope, got error=%q code=%d", w.Error, w.Code)
	}
}

func TestErrorCodeDecidesStatus(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   perr.ErrorCode
	}{
		{"unauthorized", perr.Unauthorizedf("token rejected"), http.StatusUnauthorized, perr.ErrorCodeUnauthorized},
		{"rate limited", perr.Newf(perr.ErrorCodeTooManyRequests, "search quota exhausted"), http.StatusTooManyRequests, perr.ErrorCodeTooManyRequests},
		{"panic", perr.PanicErrf("panic recovered"), http.StatusInternalServerError, perr.ErrorCodePanic},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, w := pnet.Error(tc.err, "req-2")

			if status != tc.status || w.StatusCode != tc.status {
				t.Fatalf("status = %d wire = %+v, want %d", status, w, tc.status)
			}
			if w.Status != http.StatusText(tc.status) {
				t.Fatalf("status text = %q", w.Status)
			}
			if w.Code != tc.code {
				t.Fatalf("code = %v, want %v", w.Code, tc.code)
			}
			if w.Error == "" {
				t.Fatal("expected error message in envelope")
			}
			if w.Data != nil {
				t.Fatalf("data must stay nil on error, got %v", w.Data)
			}
		})
	}
}
