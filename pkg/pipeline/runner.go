package pipeline

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/langcolors/pkg/cache"
	"github.com/matzehuels/langcolors/pkg/chain"
	"github.com/matzehuels/langcolors/pkg/errors"
	"github.com/matzehuels/langcolors/pkg/integrations"
	"github.com/matzehuels/langcolors/pkg/integrations/linguist"
	lang "github.com/matzehuels/langcolors/pkg/linguist"
	"github.com/matzehuels/langcolors/pkg/observability"
	"github.com/matzehuels/langcolors/pkg/report"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// HTTPClient overrides the client used to download catalogs.
	HTTPClient *http.Client

	// CatalogTTL is how long downloaded catalogs stay cached.
	// Zero means [cache.TTLHTTP].
	CatalogTTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → chain → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result, err := r.Prepare(ctx, opts)
	if err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, result.Report, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Prepare runs the load and chain stages and builds the report without
// rendering it. The server uses it to hold a result in memory and render
// formats on demand.
func (r *Runner) Prepare(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if opts.Title == "" {
		opts.Title = report.DefaultTitle
	}
	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	cat, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Catalog = cat
	result.CacheInfo.LoadHit = loadHit

	colors, skipped, err := cat.Colors(opts.ColorOptions())
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	for _, s := range skipped {
		r.Logger.Warn("skipping malformed color", "language", s.Language, "color", s.Color)
	}
	result.Set = chain.NewSet(colors)
	result.Skipped = skipped
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Languages = len(cat)
	result.Stats.Colored = result.Set.Len()
	result.Stats.Skipped = len(skipped)

	r.Logger.Info("loaded catalog",
		"languages", len(cat),
		"colored", result.Set.Len(),
		"skipped", len(skipped),
		"cached", loadHit,
		"duration", result.Stats.LoadTime)

	// Stage 2: Chain
	chainStart := time.Now()
	result.Chain = r.BuildChain(ctx, result.Set)
	result.Stats.ChainTime = time.Since(chainStart)
	result.Stats.ChainLength = result.Chain.Len()

	r.Logger.Info("built chain",
		"length", result.Chain.Len(),
		"total_distance", fmt.Sprintf("%.1f", result.Chain.TotalDistance()),
		"duration", result.Stats.ChainTime)

	result.Report = report.New(opts.Title, result.Set, result.Chain)
	return result, nil
}

// LoadWithCacheInfo reads or downloads the catalog and decodes it.
// The returned bool reports whether the download was served from cache;
// it is always false for local files.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (cat lang.Catalog, hit bool, err error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, false, err
	}
	source := opts.SourceLabel()

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()
	defer func() {
		hooks.OnLoadComplete(ctx, source, len(cat), time.Since(start), err)
	}()

	if opts.File != "" {
		cat, err = lang.ReadFile(opts.File)
		return cat, false, err
	}

	ttl := r.CatalogTTL
	if ttl == 0 {
		ttl = cache.TTLHTTP
	}
	client := linguist.NewClient(r.Cache, ttl)
	client.WithKeyer(r.Keyer).WithHTTPClient(r.HTTPClient)

	body, hit, err := client.FetchCatalogWithCacheInfo(ctx, opts.Source, opts.Refresh)
	if err != nil {
		return nil, false, wrapFetchError(err, opts.Source)
	}
	cat, err = lang.Decode(body)
	return cat, hit, err
}

// Load is a convenience wrapper that calls LoadWithCacheInfo and discards the cache hit info.
func (r *Runner) Load(ctx context.Context, opts Options) (lang.Catalog, error) {
	cat, _, err := r.LoadWithCacheInfo(ctx, opts)
	return cat, err
}

func wrapFetchError(err error, source string) error {
	switch {
	case stderrors.Is(err, context.Canceled):
		return err
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(errors.ErrCodeTimeout, err, "fetch %s", source)
	case stderrors.Is(err, integrations.ErrNotFound):
		return errors.Wrap(errors.ErrCodeNotFound, err, "catalog %s", source)
	default:
		return errors.Wrap(errors.ErrCodeNetwork, err, "fetch %s", source)
	}
}

// BuildChain computes the nearest-color chain and reports it to the
// observability hooks.
func (r *Runner) BuildChain(ctx context.Context, set chain.Set) chain.Chain {
	hooks := observability.Pipeline()
	hooks.OnChainStart(ctx, set.Len())
	start := time.Now()
	c := chain.Build(set)
	hooks.OnChainComplete(ctx, c.Len(), time.Since(start))
	return c
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, rep report.Report, opts Options) (artifacts map[string][]byte, allHit bool, err error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	reportHash := rep.Hash()
	artifacts = make(map[string][]byte, len(opts.Formats))
	allHit = true

	for _, format := range opts.Formats {
		// Text output carries ANSI codes for the current terminal profile.
		cacheable := report.Format(format) != report.FormatText
		key := r.Keyer.ArtifactKey(reportHash, opts.ArtifactKeyOpts(format))
		if cacheable {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				artifacts[format] = data
				continue
			}
		}
		allHit = false

		data, err := report.Render(ctx, rep, report.Format(format))
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", format, err)
		}
		artifacts[format] = data
		if cacheable {
			_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
		}
	}

	return artifacts, allHit, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, rep report.Report, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, rep, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
