// Package kegg fetches pathway documents from the KEGG REST service.
// Network failure is surfaced as-is to the caller; the graph core never
// sees this package.
package kegg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/iamjli/keggx/store"
)

// ErrPathwayNotFound is returned when the service has no pathway for the
// requested identifier.
var ErrPathwayNotFound = errors.New("kegg: pathway not found")

// DefaultBaseURL is the public KEGG REST endpoint.
const DefaultBaseURL = "https://rest.kegg.jp"

// Client fetches KGML documents by pathway identifier (e.g. "hsa04010").
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *store.Store
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the REST endpoint, mainly for tests and mirrors.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCache attaches a local document cache. Cache hits skip the network
// entirely; cache write failures are logged, never fatal.
func WithCache(s *store.Store) Option {
	return func(c *Client) { c.cache = s }
}

// NewClient creates a KEGG REST client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the KGML document for a pathway id.
func (c *Client) Get(ctx context.Context, pathwayID string) ([]byte, error) {
	if c.cache != nil {
		content, ok, err := c.cache.Get(ctx, pathwayID)
		if err != nil {
			return nil, fmt.Errorf("checking pathway cache: %w", err)
		}
		if ok {
			slog.Debug("kegg: cache hit", "pathway", pathwayID)
			return content, nil
		}
	}

	url := fmt.Sprintf("%s/get/%s/kgml", c.baseURL, pathwayID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building KEGG request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching pathway %q: %w", pathwayID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading KEGG response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %q", ErrPathwayNotFound, pathwayID)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("KEGG request for %q failed: status %d: %s",
			pathwayID, resp.StatusCode, string(body))
	}

	if c.cache != nil {
		if err := c.cache.Put(ctx, pathwayID, body); err != nil {
			slog.Warn("kegg: caching fetched pathway failed", "pathway", pathwayID, "error", err)
		}
	}

	return body, nil
}
