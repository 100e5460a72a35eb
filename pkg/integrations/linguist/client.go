package linguist

import (
	"context"
	"time"

	"github.com/matzehuels/langcolors/pkg/cache"
	"github.com/matzehuels/langcolors/pkg/integrations"
)

// DefaultURL is the upstream location of the language catalog.
const DefaultURL = "https://raw.githubusercontent.com/github/linguist/master/lib/linguist/languages.yml"

// Client fetches languages.yml with caching and automatic retries.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
}

// NewClient creates a catalog client with the given cache backend.
// Downloaded catalogs are cached for cacheTTL (pass [cache.TTLHTTP] for the
// default one day).
func NewClient(backend cache.Cache, cacheTTL time.Duration) *Client {
	headers := map[string]string{
		"Accept": "application/x-yaml, text/plain;q=0.9, */*;q=0.1",
	}
	return &Client{
		Client: integrations.NewClient(backend, "linguist", cacheTTL, headers),
	}
}

// FetchCatalog returns the raw catalog body from url.
//
// If refresh is true, the cache is bypassed and a fresh download is made.
//
// Returns:
//   - [integrations.ErrNotFound] if url answers 404
//   - [integrations.ErrNetwork] for HTTP failures (timeout, 5xx, etc.)
func (c *Client) FetchCatalog(ctx context.Context, url string, refresh bool) ([]byte, error) {
	body, _, err := c.FetchCatalogWithCacheInfo(ctx, url, refresh)
	return body, err
}

// FetchCatalogWithCacheInfo is [Client.FetchCatalog] that also reports
// whether the body was served from the cache.
func (c *Client) FetchCatalogWithCacheInfo(ctx context.Context, url string, refresh bool) ([]byte, bool, error) {
	if url == "" {
		url = DefaultURL
	}
	var body []byte
	hit, err := c.CachedWithInfo(ctx, url, refresh, &body, func() error {
		data, err := c.GetBytes(ctx, url)
		if err != nil {
			return err
		}
		body = data
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return body, hit, nil
}
