// Package suggest looks up location suggestions (trip destination
// autocomplete) from a remote geocoding service.
//
// Lookups are the one network-backed suspension point in the core and must
// be cancellable: a result must never be applied after the originating
// input context has changed, so callers cancel the context and Lookup
// discards anything that arrives afterwards.
package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Suggestion is one location candidate.
type Suggestion struct {
	Name    string  `json:"name"`
	Region  string  `json:"region,omitempty"`
	Country string  `json:"country,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Client queries a geocoding endpoint for location suggestions.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup returns suggestions for the query. It honors ctx cancellation and
// never returns a stale result: if ctx is done by the time the response has
// been read, the result is dropped and ctx's error is returned.
func (c *Client) Lookup(ctx context.Context, query string) ([]Suggestion, error) {
	u := fmt.Sprintf("%s?q=%s", c.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build suggestion request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch suggestions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggestion service returned %d", resp.StatusCode)
	}

	var suggestions []Suggestion
	if err := json.NewDecoder(resp.Body).Decode(&suggestions); err != nil {
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}

	// The input may have changed while the response was in flight.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return suggestions, nil
}
