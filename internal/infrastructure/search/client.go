// Package search runs polite, rate limited web lookups for contact discovery.
package search

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/time/rate"
)

const maxPageBytes = 2 << 20

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 13_5) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
}

// Client is the HTTP side shared by WebSearcher and PageFetcher. Every request
// waits on the same limiter.
type Client struct {
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	// UserAgent pins the header; empty rotates through a small desktop set.
	UserAgent string
}

// NewClient allows perSecond requests with a burst of one. perSecond <= 0
// disables limiting.
func NewClient(perSecond float64, timeout time.Duration, userAgent string) *Client {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		Limiter:    rate.NewLimiter(limit, 1),
		UserAgent:  userAgent,
	}
}

func (c *Client) getHTML(ctx context.Context, url string, headers map[string]string) (*html.Node, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	return html.Parse(io.LimitReader(resp.Body, maxPageBytes))
}

func (c *Client) userAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return userAgents[rand.Intn(len(userAgents))]
}
