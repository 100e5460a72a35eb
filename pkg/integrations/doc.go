// Package integrations provides HTTP clients for upstream data sources.
//
// # Overview
//
// Each upstream has its own subpackage; today that is [linguist], which
// downloads GitHub Linguist's languages.yml catalog.
//
// # Client Pattern
//
// Source clients embed the shared [Client] and follow one pattern:
//
//	client := linguist.NewClient(backend, 24*time.Hour)
//	raw, err := client.FetchCatalog(ctx, linguist.DefaultURL, false) // false = use cache
//
// The shared [Client] handles:
//   - HTTP requests with retry on network errors, 429 and 5xx
//   - Response caching through [cache.Cache] with a per-source key prefix
//   - A User-Agent header derived from the build version
//
// [linguist]: github.com/matzehuels/langcolors/pkg/integrations/linguist
// [cache.Cache]: github.com/matzehuels/langcolors/pkg/cache.Cache
package integrations
