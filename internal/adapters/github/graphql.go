package github

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	perr "issuehound/internal/platform/errors"

	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

var aliasSafe = regexp.MustCompile(`[^a-zA-Z0-9]`)

// FacetCounts resolves issue counts for many search queries in one GraphQL
// round trip using one aliased search sub-query per facet value
// Token-gated: the GraphQL API rejects anonymous calls
func (c *Client) FacetCounts(ctx context.Context, queries map[string]string) (map[string]int, error) {
	if c.token() == "" {
		return nil, perr.Unauthorizedf("facet counts require a token")
	}
	if len(queries) == 0 {
		return map[string]int{}, nil
	}

	// alias -> facet key, aliases sanitized to GraphQL name rules with an
	// index so distinct keys never collapse onto the same alias
	aliases := make(map[string]string, len(queries))
	var b strings.Builder
	b.WriteString("query {")
	i := 0
	for key, q := range queries {
		alias := "f" + strconv.Itoa(i) + "_" + aliasSafe.ReplaceAllString(key, "_")
		i++
		aliases[alias] = key
		b.WriteString(" ")
		b.WriteString(alias)
		b.WriteString(": search(query: ")
		b.WriteString(strconv.Quote(q))
		b.WriteString(", type: ISSUE, first: 0) { issueCount }")
	}
	b.WriteString(" }")

	body, err := json.Marshal(map[string]string{"query": b.String()})
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "facet query marshal")
	}

	resp, err := c.Do(ctx, http.MethodPost, "/graphql", body)
	if err != nil {
		return nil, err
	}
	defer c.closeBody(resp, "/graphql")

	var wire struct {
		Data   map[string]struct{ IssueCount int } `json:"data"`
		Errors []struct{ Message string }          `json:"errors"`
	}
	if err := decodeBody(resp.Body, &wire); err != nil {
		return nil, err
	}
	if len(wire.Errors) > 0 {
		return nil, perr.Newf(perr.ErrorCodeUnknown, "graphql: %s", wire.Errors[0].Message)
	}

	out := make(map[string]int, len(wire.Data))
	for alias, v := range wire.Data {
		if key, ok := aliases[alias]; ok {
			out[key] = v.IssueCount
		}
	}
	return out, nil
}

// ProbeRateLimit asks the GraphQL API for the current window and feeds the
// gate, which is cheaper than burning a search call to learn the budget
func (c *Client) ProbeRateLimit(ctx context.Context) (ratelimitRemaining int, err error) {
	tok := c.token()
	if tok == "" {
		return 0, perr.Unauthorizedf("rate limit probe requires a token")
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: tok})
	gq := githubv4.NewClient(oauth2.NewClient(ctx, src))

	var q struct {
		RateLimit struct {
			Remaining githubv4.Int
			ResetAt   githubv4.DateTime
		}
	}
	if err := gq.Query(ctx, &q, nil); err != nil {
		return 0, perr.Wrap(err, perr.ErrorCodeUnavailable, "rate limit probe")
	}

	if c.gate != nil {
		c.gate.Record(int(q.RateLimit.Remaining), q.RateLimit.ResetAt.Unix())
	}
	return int(q.RateLimit.Remaining), nil
}
