// Package observability lets callers watch the pipeline, the caches and
// the catalog HTTP client without those packages depending on a metrics or
// tracing backend.
//
// Hooks are process-wide. Install them once at startup:
//
//	observability.SetPipelineHooks(myHooks)
//
// and the instrumented packages report through the current registration:
//
//	observability.Pipeline().OnLoadStart(ctx, source)
//
// [LogHooks] writes every event to a charmbracelet/log logger at debug
// level; `langcolors --verbose` installs it.
package observability

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// PipelineHooks receives the load → chain → render stage events.
type PipelineHooks interface {
	OnLoadStart(ctx context.Context, source string)
	OnLoadComplete(ctx context.Context, source string, languageCount int, duration time.Duration, err error)

	OnChainStart(ctx context.Context, setSize int)
	OnChainComplete(ctx context.Context, chainLength int, duration time.Duration)

	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives cache lookups and writes, tagged with the backend
// name ("file" or "redis").
type CacheHooks interface {
	OnCacheHit(ctx context.Context, backend string)
	OnCacheMiss(ctx context.Context, backend string)
	OnCacheSet(ctx context.Context, backend string, size int)
}

// HTTPHooks receives outgoing catalog requests.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, host, path string)
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError is called when no response arrived at all.
	OnError(ctx context.Context, method, host, path string, err error)
}

// Hooks implements every hook interface.
type Hooks interface {
	PipelineHooks
	CacheHooks
	HTTPHooks
}

// Noop ignores every event. Embed it to implement only some methods.
type Noop struct{}

var _ Hooks = Noop{}

func (Noop) OnLoadStart(context.Context, string)                                    {}
func (Noop) OnLoadComplete(context.Context, string, int, time.Duration, error)      {}
func (Noop) OnChainStart(context.Context, int)                                      {}
func (Noop) OnChainComplete(context.Context, int, time.Duration)                    {}
func (Noop) OnRenderStart(context.Context, []string)                                {}
func (Noop) OnRenderComplete(context.Context, []string, time.Duration, error)       {}
func (Noop) OnCacheHit(context.Context, string)                                     {}
func (Noop) OnCacheMiss(context.Context, string)                                    {}
func (Noop) OnCacheSet(context.Context, string, int)                                {}
func (Noop) OnRequest(context.Context, string, string, string)                      {}
func (Noop) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (Noop) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Registry
// =============================================================================

// registry is replaced as a whole on every change so readers never lock.
type registry struct {
	pipeline PipelineHooks
	cache    CacheHooks
	http     HTTPHooks
}

var (
	current  atomic.Pointer[registry]
	updateMu sync.Mutex
)

func init() { Reset() }

func update(fn func(r *registry)) {
	updateMu.Lock()
	defer updateMu.Unlock()
	next := *current.Load()
	fn(&next)
	current.Store(&next)
}

// SetPipelineHooks registers pipeline hooks. Nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		update(func(r *registry) { r.pipeline = h })
	}
}

// SetCacheHooks registers cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		update(func(r *registry) { r.cache = h })
	}
}

// SetHTTPHooks registers HTTP hooks. Nil is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		update(func(r *registry) { r.http = h })
	}
}

// Install registers h for every event kind.
func Install(h Hooks) {
	if h != nil {
		update(func(r *registry) { r.pipeline, r.cache, r.http = h, h, h })
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks { return current.Load().pipeline }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return current.Load().cache }

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks { return current.Load().http }

// Reset drops every registration.
func Reset() {
	updateMu.Lock()
	defer updateMu.Unlock()
	current.Store(&registry{pipeline: Noop{}, cache: Noop{}, http: Noop{}})
}
