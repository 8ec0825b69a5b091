package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"issuehound/internal/core/ratelimit"
)

type fakeTransport struct {
	calls     int
	responses []*http.Response
	lastReq   *http.Request
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.lastReq = req
	resp := f.responses[f.calls]
	f.calls++
	return resp, nil
}

func resp(status int, body string, hdr map[string]string) *http.Response {
	h := http.Header{}
	for k, v := range hdr {
		h.Set(k, v)
	}
	return &http.Response{
		StatusCode: status,
		Header:     h,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newTestClient(t *testing.T, ft *fakeTransport) (*Client, *ratelimit.Gate) {
	t.Helper()
	gate := ratelimit.New()
	c := NewClient(Options{BaseURL: "https://gh.test", RetryBase: time.Millisecond}, gate)
	c.http = &http.Client{Transport: ft}
	c.sleep = func(time.Duration) {}
	return c, gate
}

func TestDo_RecordsGateOn403WithoutRetry(t *testing.T) {
	future := fmt.Sprint(time.Now().Add(time.Hour).Unix())
	ft := &fakeTransport{responses: []*http.Response{
		resp(403, `{"message":"rate limited"}`, map[string]string{
			"X-RateLimit-Remaining": "0",
			"X-RateLimit-Reset":     future,
		}),
	}}
	c, gate := newTestClient(t, ft)

	_, err := c.Do(context.Background(), http.MethodGet, "/search/issues?q=x", nil)
	if !IsRateLimited(err) {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if ft.calls != 1 {
		t.Fatalf("403 must not be retried, transport calls = %d", ft.calls)
	}
	if !gate.Limited() {
		t.Fatalf("gate should be limited after 403 with exhausted headers")
	}
	if ResetOf(err) == 0 {
		t.Fatalf("rate limit error should carry the reset time")
	}
}

func TestDo_LocalGateShortCircuits(t *testing.T) {
	ft := &fakeTransport{}
	c, gate := newTestClient(t, ft)
	gate.Record(0, time.Now().Add(time.Hour).Unix())

	_, err := c.Do(context.Background(), http.MethodGet, "/search/issues?q=x", nil)
	if !IsRateLimited(err) {
		t.Fatalf("expected local rate limit rejection, got %v", err)
	}
	if ft.calls != 0 {
		t.Fatalf("limited gate must prevent transport calls, got %d", ft.calls)
	}
}

func TestDo_TransientRetriedThenSucceeds(t *testing.T) {
	ft := &fakeTransport{responses: []*http.Response{
		resp(503, "unavailable", nil),
		resp(200, `{"ok":true}`, map[string]string{
			"X-RateLimit-Remaining": "9",
			"X-RateLimit-Reset":     "1700000000",
		}),
	}}
	c, gate := newTestClient(t, ft)

	r, err := c.Do(context.Background(), http.MethodGet, "/x", nil)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	_ = r.Body.Close()
	if ft.calls != 2 {
		t.Fatalf("expected one retry, transport calls = %d", ft.calls)
	}
	if got := gate.Snapshot(); got.Remaining != 9 || got.ResetAt != 1700000000 {
		t.Fatalf("gate not fed from success headers: %+v", got)
	}
}

func TestDo_TransientRetryBounded(t *testing.T) {
	ft := &fakeTransport{responses: []*http.Response{
		resp(503, "x", nil),
		resp(503, "x", nil),
		resp(503, "x", nil),
	}}
	c, _ := newTestClient(t, ft)

	_, err := c.Do(context.Background(), http.MethodGet, "/x", nil)
	if err == nil || !IsTransient(err) {
		t.Fatalf("expected transient error after bounded retries, got %v", err)
	}
	// default budget is 2 extra attempts
	if ft.calls != 3 {
		t.Fatalf("transport calls = %d, want 3", ft.calls)
	}
}

func TestSearchIssues_DecodesAndSendsParams(t *testing.T) {
	ft := &fakeTransport{responses: []*http.Response{
		resp(200, `{"total_count":2,"items":[{"id":1,"title":"a"},{"id":2,"title":"b"}]}`, nil),
	}}
	c, _ := newTestClient(t, ft)

	out, err := c.SearchIssues(context.Background(), `leak is:issue state:open`, "created", "desc", 3)
	if err != nil {
		t.Fatalf("SearchIssues: %v", err)
	}
	if out.TotalCount != 2 || len(out.Items) != 2 || out.Items[1].Title != "b" {
		t.Fatalf("decode mismatch: %+v", out)
	}

	q := ft.lastReq.URL.Query()
	if q.Get("q") != "leak is:issue state:open" || q.Get("per_page") != "20" || q.Get("page") != "3" {
		t.Fatalf("query params mismatch: %v", q)
	}
	if got := ft.lastReq.Header.Get("Accept"); got != acceptV3 {
		t.Fatalf("Accept header = %q", got)
	}
}

func TestViewer_ParsesScopesAndUsesExplicitToken(t *testing.T) {
	ft := &fakeTransport{responses: []*http.Response{
		resp(200, `{"id":7,"login":"octocat"}`, map[string]string{
			"X-OAuth-Scopes": "repo, read:org",
		}),
	}}
	c, _ := newTestClient(t, ft)

	u, scopes, err := c.Viewer(context.Background(), "tok123")
	if err != nil {
		t.Fatalf("Viewer: %v", err)
	}
	if u.Login != "octocat" {
		t.Fatalf("user mismatch: %+v", u)
	}
	if len(scopes) != 2 || scopes[0] != "repo" || scopes[1] != "read:org" {
		t.Fatalf("scopes = %v", scopes)
	}
	if got := ft.lastReq.Header.Get("Authorization"); got != "token tok123" {
		t.Fatalf("Authorization = %q", got)
	}
}

func TestDo_TokenSourceAttachedWhenPresent(t *testing.T) {
	ft := &fakeTransport{responses: []*http.Response{resp(200, `{}`, nil)}}
	c, _ := newTestClient(t, ft)
	c.SetTokenSource(func() string { return "abc" })

	r, err := c.Do(context.Background(), http.MethodGet, "/x", nil)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	_ = r.Body.Close()
	if got := ft.lastReq.Header.Get("Authorization"); got != "token abc" {
		t.Fatalf("Authorization = %q", got)
	}
}

func TestExtractScopesEmptyHeader(t *testing.T) {
	ft := &fakeTransport{responses: []*http.Response{resp(200, `{"id":1,"login":"x"}`, nil)}}
	c, _ := newTestClient(t, ft)

	_, scopes, err := c.Viewer(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Viewer: %v", err)
	}
	if len(scopes) != 0 {
		t.Fatalf("scopes should be empty, got %v", scopes)
	}
}
