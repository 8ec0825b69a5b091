// Package github provides the GitHub REST v3 and GraphQL client used by the
// search, discovery, auth, and trending services
package github

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"issuehound/internal/core/ratelimit"
	perr "issuehound/internal/platform/errors"
	"issuehound/internal/platform/logger"
)

const (
	baseURLDefault   = "https://api.github.com"
	defaultTimeout   = 10 * time.Second
	defaultUA        = "issuehound"
	defaultMaxRetry  = 2
	defaultRetryBase = 500 * time.Millisecond

	acceptV3 = "application/vnd.github.v3+json"
)

// SearchPageSize is the fixed page size for issue search
const SearchPageSize = 20

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// MaxRetries bounds extra attempts for transient failures
	// Rate limited responses are never retried
	MaxRetries int
	RetryBase  time.Duration
}

// TokenSource supplies the current auth token, empty when anonymous
type TokenSource func() string

// Client is a rate-limit-aware GitHub client
// Every response that carries limit headers updates the shared gate, and the
// gate is consulted before each request so an exhausted window short-circuits
// locally instead of burning calls on guaranteed 403s
type Client struct {
	http  *http.Client
	opts  Options
	gate  *ratelimit.Gate
	token TokenSource
	log   logger.Logger
	now   func() time.Time
	sleep func(time.Duration)
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options, gate *ratelimit.Gate) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		gate:  gate,
		token: func() string { return "" },
		log:   *logger.Named("github"),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// SetTokenSource installs the token provider, typically the auth service
func (c *Client) SetTokenSource(ts TokenSource) {
	if ts != nil {
		c.token = ts
	}
}

// Gate exposes the shared rate-limit gate
func (c *Client) Gate() *ratelimit.Gate { return c.gate }

// Do issues a request with auth, gate checks, and bounded transient retry
// body may be nil; callers own closing the response body on success
func (c *Client) Do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	return c.do(ctx, method, path, body, c.token())
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, token string) (*http.Response, error) {
	if c.gate != nil && c.gate.Limited() {
		return nil, &RateLimitError{ResetAt: c.gate.ResetAt()}
	}

	url := c.opts.BaseURL + path
	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		var rd io.Reader
		if body != nil {
			rd = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, rd)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "github new request failed")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Accept", acceptV3)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if token != "" {
			req.Header.Set("Authorization", "token "+token)
		}

		start := c.now()
		resp, err := c.http.Do(req)
		lat := c.now().Sub(start)

		if err != nil {
			if !c.shouldRetry(attempts) {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "github do failed")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("github transport error retrying")
			c.sleep(back)
			attempts++
			continue
		}

		// feed the gate from every response that carries limit headers,
		// failures included
		rem, reset, hasLimit := parseRateHeaders(resp.Header)
		if hasLimit && c.gate != nil {
			c.gate.Record(rem, reset)
		}
		c.log.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Int("rate_remaining", rem).
			Msg("github http response")

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return resp, nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusForbidden:
			// rate limited, never retried regardless of body contents
			resetAt := reset
			if resetAt == 0 && c.gate != nil {
				resetAt = c.gate.ResetAt()
			}
			_ = drainAndClose(resp.Body)
			return nil, &RateLimitError{ResetAt: resetAt}
		case resp.StatusCode >= 500:
			if !c.shouldRetry(attempts) {
				_ = drainAndClose(resp.Body)
				return nil, perr.Newf(perr.ErrorCodeUnavailable, "github server error %d", resp.StatusCode)
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Int("status", resp.StatusCode).
				Msg("github transient error retrying")
			_ = drainAndClose(resp.Body)
			c.sleep(back)
			attempts++
			continue
		default:
			// read a small tail for diagnostics then return
			tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			return nil, &StatusError{
				Status: resp.StatusCode,
				Err:    perr.Newf(perr.ErrorCodeUnknown, "github unexpected status %d body %s", resp.StatusCode, string(tail)),
			}
		}
	}
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase
	// simple exponential with cap
	ms := int64(d / time.Millisecond)
	ms = ms << uint(attempt)
	max := int64(30 * time.Second / time.Millisecond)
	if ms > max {
		ms = max
	}
	return time.Duration(ms) * time.Millisecond
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}
