package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/matzehuels/langcolors/pkg/errors"
	"github.com/matzehuels/langcolors/pkg/pipeline"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
types = ["programming", "markup"]
strict = true
formats = ["html", "json"]
title = "Colors"

[cache]
backend = "redis"
redis_addr = "localhost:6379"
redis_db = 2
ttl = "90m"

[server]
addr = ":9090"
refresh = "6h"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Source != pipeline.DefaultSource {
		t.Errorf("Source = %q, want default", cfg.Source)
	}
	if !slices.Equal(cfg.Types, []string{"programming", "markup"}) || !cfg.Strict {
		t.Errorf("types/strict = %v/%v", cfg.Types, cfg.Strict)
	}
	if cfg.Cache.Backend != BackendRedis || cfg.Cache.RedisDB != 2 || cfg.Cache.TTL.Duration != 90*time.Minute {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Server.Addr != ":9090" || cfg.Server.Refresh.Duration != 6*time.Hour {
		t.Errorf("server = %+v", cfg.Server)
	}

	opts := cfg.PipelineOptions()
	if opts.Title != "Colors" || !opts.Strict || !slices.Equal(opts.Formats, []string{"html", "json"}) {
		t.Errorf("PipelineOptions() = %+v", opts)
	}
}

func TestLoadDefaultPathMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Cache.Backend != BackendFile || cfg.Server.Addr != DefaultAddr {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "langcolors"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(DefaultPath(), []byte(`title = "From XDG"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Title != "From XDG" {
		t.Errorf("Title = %q", cfg.Title)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"syntax", `title = `, errors.ErrCodeInvalidConfig},
		{"bad duration", "[cache]\nttl = \"soon\"", errors.ErrCodeInvalidConfig},
		{"bad format", `formats = ["pdf"]`, errors.ErrCodeInvalidConfig},
		{"bad type", `types = ["config"]`, errors.ErrCodeInvalidConfig},
		{"bad backend", "[cache]\nbackend = \"memcached\"", errors.ErrCodeInvalidConfig},
		{"redis without addr", "[cache]\nbackend = \"redis\"", errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want %s", err, tt.code)
			}
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("explicit missing path error = %v, want FILE_NOT_FOUND", err)
	}
}
