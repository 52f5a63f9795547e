// Package filestore is a client for the file-search HTTP API used by the
// file-search link resolution mode.
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client communicates with the filestore HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// File is a single search hit: a stored file's display name and URL.
type File struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Search queries files whose title contains the given substring. Zero
// matches is a normal outcome and returns an empty slice, not an error.
func (c *Client) Search(ctx context.Context, titleContains string, limit int) ([]File, error) {
	q := url.Values{}
	q.Set("title_contains", titleContains)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/files?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("search files: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("search files %q: status %d: %s", titleContains, resp.StatusCode, string(respBody))
	}

	var result struct {
		Files []File `json:"files"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode files: %w", err)
	}
	return result.Files, nil
}

// Close releases any resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
