// Package wiki fetches external reference pages for link previews.
package wiki

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxPageBytes = 4 << 20

// Client performs preview fetches with muted-exception semantics: a non-2xx
// response is not an error, its body is returned like any other page and the
// caller inspects the content. Only transport failures error, and those are
// retried with backoff first.
type Client struct {
	httpClient *http.Client
	stats      *FetchStats
}

func NewClient(timeout time.Duration, stats *FetchStats) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		stats: stats,
	}
}

// FetchPage GETs the URL and returns the body text regardless of response
// status. Transport errors are retried up to maxAttempts before surfacing.
func (c *Client) FetchPage(ctx context.Context, pageURL string) (string, error) {
	started := time.Now()

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff(attempt - 1)):
			}
		}

		body, err := c.fetchOnce(ctx, pageURL)
		if err != nil {
			lastErr = err
			continue
		}
		if c.stats != nil {
			c.stats.Record(time.Since(started).Milliseconds(), int64(len(body)))
		}
		return body, nil
	}
	return "", fmt.Errorf("fetch %s: %w", pageURL, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, pageURL string) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	// Status is deliberately ignored: error pages render as previews too.
	return string(body), nil
}

// Close releases resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
