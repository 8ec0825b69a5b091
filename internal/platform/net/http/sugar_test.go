package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

type notePayload struct {
	Text string `json:"text"`
}

func exercise(t *testing.T, r Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, req)
	return rr
}

func TestSugarVerbRegistration(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())

	GetJSON(r, "/notes", func(_ *http.Request) (any, error) {
		return []string{"first"}, nil
	})
	PostJSON[notePayload](r, "/notes", func(_ *http.Request, in notePayload) (any, error) {
		return map[string]string{"created": in.Text}, nil
	})
	PutJSON[notePayload](r, "/notes/1", func(_ *http.Request, in notePayload) (any, error) {
		return map[string]string{"updated": in.Text}, nil
	})
	PatchJSON[notePayload](r, "/notes/1", func(_ *http.Request, in notePayload) (any, error) {
		return map[string]string{"patched": in.Text}, nil
	})
	DeleteJSON(r, "/notes/1", func(_ *http.Request) (any, error) {
		return map[string]bool{"deleted": true}, nil
	})

	rr := exercise(t, r, http.MethodGet, "/notes", "")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "first") {
		t.Fatalf("GET: code=%d body=%q", rr.Code, rr.Body.String())
	}

	rr = exercise(t, r, http.MethodPost, "/notes", `{"text":"hi"}`)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"created":"hi"`) {
		t.Fatalf("POST: code=%d body=%q", rr.Code, rr.Body.String())
	}

	rr = exercise(t, r, http.MethodPut, "/notes/1", `{"text":"new"}`)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"updated":"new"`) {
		t.Fatalf("PUT: code=%d body=%q", rr.Code, rr.Body.String())
	}

	rr = exercise(t, r, http.MethodPatch, "/notes/1", `{"text":"part"}`)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"patched":"part"`) {
		t.Fatalf("PATCH: code=%d body=%q", rr.Code, rr.Body.String())
	}

	rr = exercise(t, r, http.MethodDelete, "/notes/1", "")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"deleted":true`) {
		t.Fatalf("DELETE: code=%d body=%q", rr.Code, rr.Body.String())
	}
}

func TestSugarBindErrorPropagates(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	PostJSON[notePayload](r, "/notes", func(_ *http.Request, in notePayload) (any, error) {
		t.Fatal("handler must not run on malformed input")
		return nil, nil
	})

	rr := exercise(t, r, http.MethodPost, "/notes", `{"text":`)
	if rr.Code == http.StatusOK {
		t.Fatalf("malformed body must not yield 200, got %d", rr.Code)
	}
}
