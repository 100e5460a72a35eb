package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements every hook interface by writing debug lines to a logger.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns LogHooks writing to l, or to log.Default() if l is nil.
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{Logger: l}
}

var _ Hooks = (*LogHooks)(nil)

// Install registers h for every event kind.
func (h *LogHooks) Install() { Install(h) }

func (h *LogHooks) OnLoadStart(_ context.Context, source string) {
	h.Logger.Debug("load start", "source", source)
}

func (h *LogHooks) OnLoadComplete(_ context.Context, source string, n int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("load failed", "source", source, "duration", d, "err", err)
		return
	}
	h.Logger.Debug("load complete", "source", source, "languages", n, "duration", d)
}

func (h *LogHooks) OnChainStart(_ context.Context, size int) {
	h.Logger.Debug("chain start", "colors", size)
}

func (h *LogHooks) OnChainComplete(_ context.Context, length int, d time.Duration) {
	h.Logger.Debug("chain complete", "length", length, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render start", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("render failed", "formats", formats, "duration", d, "err", err)
		return
	}
	h.Logger.Debug("render complete", "formats", formats, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, backend string) {
	h.Logger.Debug("cache hit", "backend", backend)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, backend string) {
	h.Logger.Debug("cache miss", "backend", backend)
}

func (h *LogHooks) OnCacheSet(_ context.Context, backend string, size int) {
	h.Logger.Debug("cache set", "backend", backend, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, host, path string) {
	h.Logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.Logger.Debug("http response", "method", method, "host", host, "path", path, "status", status, "duration", d)
}

func (h *LogHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.Logger.Debug("http error", "method", method, "host", host, "path", path, "err", err)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)
