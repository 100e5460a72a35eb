// Package server exposes a langcolors report over HTTP.
//
// The server loads the catalog once at startup, keeps the prepared result
// in memory and renders artifacts on demand through the pipeline runner,
// so every format shares the runner's artifact cache. POST /refresh (or
// the periodic refresh interval) reloads the catalog.
//
// Routes:
//
//	GET  /                    HTML report
//	GET  /report.{format}     report in any format (html, json, dot, svg, png, text)
//	GET  /chain.json          JSON report
//	GET  /languages           colored languages by name
//	GET  /languages/{name}    one language record with its nearest colors (?k=5)
//	GET  /healthz             liveness and catalog stats
//	POST /refresh             reload the catalog
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/langcolors/pkg/pipeline"
)

// Server serves one prepared report. It is safe for concurrent use.
type Server struct {
	runner *pipeline.Runner
	opts   pipeline.Options
	logger *log.Logger

	mu          sync.RWMutex
	result      *pipeline.Result
	refreshedAt time.Time
}

// New creates a server; call [Server.Refresh] before serving requests.
func New(runner *pipeline.Runner, opts pipeline.Options, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, opts: opts, logger: logger}
}

// Refresh reloads the catalog and swaps in the new result. When force is
// true the catalog download bypasses the cache. On failure the previous
// result stays in place.
func (s *Server) Refresh(ctx context.Context, force bool) (*pipeline.Result, error) {
	opts := s.opts
	opts.Refresh = force

	result, err := s.runner.Prepare(ctx, opts)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.result = result
	s.refreshedAt = time.Now().UTC()
	s.mu.Unlock()

	s.logger.Info("catalog refreshed",
		"languages", result.Stats.Colored,
		"chain_length", result.Stats.ChainLength,
		"cached", result.CacheInfo.LoadHit)
	return result, nil
}

// current returns the active result, or nil before the first refresh.
func (s *Server) current() (*pipeline.Result, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result, s.refreshedAt
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
// A positive interval reloads the catalog periodically.
func (s *Server) Run(ctx context.Context, addr string, interval time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if interval > 0 {
		go s.refreshLoop(ctx, interval)
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) refreshLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Refresh(ctx, true); err != nil {
				s.logger.Warn("periodic refresh failed", "err", err)
			}
		}
	}
}
