package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// SearchIssues performs GET /search/issues for one page of results
// q is the fully built search string; page is 1-based
func (c *Client) SearchIssues(ctx context.Context, q, sort, order string, page int) (SearchResult, error) {
	v := url.Values{}
	v.Set("q", q)
	v.Set("sort", sort)
	v.Set("order", order)
	v.Set("per_page", fmt.Sprint(SearchPageSize))
	v.Set("page", fmt.Sprint(page))

	var out SearchResult
	if err := c.getJSON(ctx, "/search/issues?"+v.Encode(), &out); err != nil {
		return SearchResult{}, err
	}
	return out, nil
}

// SearchRepositories performs GET /search/repositories sorted by stars
func (c *Client) SearchRepositories(ctx context.Context, q string, perPage int) (RepoSearchResult, error) {
	v := url.Values{}
	v.Set("q", q)
	v.Set("sort", "stars")
	v.Set("order", "desc")
	v.Set("per_page", fmt.Sprint(perPage))

	var out RepoSearchResult
	if err := c.getJSON(ctx, "/search/repositories?"+v.Encode(), &out); err != nil {
		return RepoSearchResult{}, err
	}
	return out, nil
}

// RepoLanguages fetches the language byte breakdown for owner/name
func (c *Client) RepoLanguages(ctx context.Context, fullName string) (map[string]int64, error) {
	var out map[string]int64
	if err := c.getJSON(ctx, "/repos/"+fullName+"/languages", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RepoLabels fetches up to 100 labels for owner/name
func (c *Client) RepoLabels(ctx context.Context, fullName string) ([]Label, error) {
	var out []Label
	if err := c.getJSON(ctx, "/repos/"+fullName+"/labels?per_page=100", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetIssue fetches a single issue by repository and number
func (c *Client) GetIssue(ctx context.Context, fullName string, number int) (Issue, error) {
	var out Issue
	if err := c.getJSON(ctx, fmt.Sprintf("/repos/%s/issues/%d", fullName, number), &out); err != nil {
		return Issue{}, err
	}
	return out, nil
}

// Viewer verifies a token against GET /user and returns the user plus the
// granted scopes from the X-OAuth-Scopes header
// The token is passed explicitly so a candidate can be checked before it
// becomes the client's token source
func (c *Client) Viewer(ctx context.Context, token string) (User, []string, error) {
	resp, err := c.do(ctx, http.MethodGet, "/user", nil, token)
	if err != nil {
		return User{}, nil, err
	}
	defer c.closeBody(resp, "/user")

	var out User
	if err := decodeBody(resp.Body, &out); err != nil {
		return User{}, nil, err
	}

	var scopes []string
	for _, s := range strings.Split(resp.Header.Get("X-OAuth-Scopes"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			scopes = append(scopes, s)
		}
	}
	return out, scopes, nil
}

// getJSON is the common GET-and-decode path
func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	resp, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer c.closeBody(resp, path)
	return decodeBody(resp.Body, dest)
}

func (c *Client) closeBody(resp *http.Response, path string) {
	if cerr := resp.Body.Close(); cerr != nil {
		c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
	}
}

func decodeBody(r io.Reader, dest any) error {
	b, err := io.ReadAll(io.LimitReader(r, 4<<20))
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dest)
}
