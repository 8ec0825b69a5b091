package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"testing"

	"issuehound/internal/core/ratelimit"
)

type transportFunc func(*http.Request) (*http.Response, error)

func (f transportFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

var facetSubQuery = regexp.MustCompile(`(\w+): search\(query: "([^"]+)"`)

func TestFacetCountsAliasesNeverCollide(t *testing.T) {
	// both keys sanitize to the same alphanumeric tail
	counts := map[string]int{"help.wanted": 3, "help-wanted": 8}

	rt := transportFunc(func(r *http.Request) (*http.Response, error) {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read request: %v", err)
		}
		var req struct {
			Query string `json:"query"`
		}
		if err := json.Unmarshal(raw, &req); err != nil {
			t.Fatalf("request body: %v", err)
		}

		data := map[string]map[string]int{}
		for _, m := range facetSubQuery.FindAllStringSubmatch(req.Query, -1) {
			alias, q := m[1], m[2]
			if _, dup := data[alias]; dup {
				t.Fatalf("duplicate alias %q in query %q", alias, req.Query)
			}
			data[alias] = map[string]int{"issueCount": counts[q]}
		}
		if len(data) != 2 {
			t.Fatalf("expected 2 sub-queries, got %d in %q", len(data), req.Query)
		}
		body, _ := json.Marshal(map[string]any{"data": data})
		return resp(200, string(body), nil), nil
	})

	c := NewClient(Options{BaseURL: "https://gh.test"}, ratelimit.New())
	c.http = &http.Client{Transport: rt}
	c.SetTokenSource(func() string { return "tok" })

	out, err := c.FacetCounts(context.Background(), map[string]string{
		"help.wanted": "help.wanted",
		"help-wanted": "help-wanted",
	})
	if err != nil {
		t.Fatalf("FacetCounts: %v", err)
	}
	if out["help.wanted"] != 3 || out["help-wanted"] != 8 {
		t.Fatalf("counts lost to an alias collision: %v", out)
	}
}
