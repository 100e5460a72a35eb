// Package config loads the optional langcolors TOML configuration file.
//
// The file lives at $XDG_CONFIG_HOME/langcolors/config.toml (falling back to
// ~/.config) unless a path is given explicitly. Every key is optional:
//
//	source  = "https://raw.githubusercontent.com/github/linguist/master/lib/linguist/languages.yml"
//	types   = ["programming"]
//	strict  = false
//	formats = ["html"]
//	title   = "Language Colors"
//
//	[cache]
//	backend    = "file"      # file, redis, none
//	dir        = "/tmp/langcolors"
//	ttl        = "24h"
//	redis_addr = "localhost:6379"
//	redis_db   = 0
//	prefix     = "langcolors:"
//
//	[server]
//	addr    = ":8080"
//	refresh = "6h"
//
// Command-line flags override file values; file values override defaults.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/langcolors/pkg/cache"
	"github.com/matzehuels/langcolors/pkg/errors"
	"github.com/matzehuels/langcolors/pkg/pipeline"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// DefaultAddr is the listen address for `langcolors serve`.
const DefaultAddr = ":8080"

// Config is the decoded configuration file.
type Config struct {
	Source  string   `toml:"source"`
	File    string   `toml:"file"`
	Types   []string `toml:"types"`
	Strict  bool     `toml:"strict"`
	Formats []string `toml:"formats"`
	Title   string   `toml:"title"`

	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend       string   `toml:"backend"`
	Dir           string   `toml:"dir"`
	TTL           Duration `toml:"ttl"`
	RedisAddr     string   `toml:"redis_addr"`
	RedisPassword string   `toml:"redis_password"`
	RedisDB       int      `toml:"redis_db"`
	Prefix        string   `toml:"prefix"`
}

// ServerConfig configures `langcolors serve`.
type ServerConfig struct {
	Addr string `toml:"addr"`

	// Refresh reloads the catalog periodically; zero disables it.
	Refresh Duration `toml:"refresh"`
}

// Duration is a time.Duration written as a Go duration string in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses strings such as "24h" or "90m".
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Source:  pipeline.DefaultSource,
		Formats: []string{pipeline.DefaultFormat},
		Cache: CacheConfig{
			Backend: BackendFile,
			TTL:     Duration{cache.TTLHTTP},
		},
		Server: ServerConfig{Addr: DefaultAddr},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "langcolors", "config.toml")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "langcolors", "config.toml")
	}
	return ""
}

// Load reads the config at path on top of [Default]. An empty path means
// [DefaultPath], which may be missing; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if os.IsNotExist(err) {
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if err := pipeline.ValidateFormats(c.Formats); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "formats")
	}
	if err := pipeline.ValidateTypes(c.Types); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "types")
	}
	if !slices.Contains([]string{BackendFile, BackendRedis, BackendNone, ""}, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
	}
	if c.Cache.TTL.Duration < 0 || c.Server.Refresh.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "durations cannot be negative")
	}
	return nil
}

// PipelineOptions converts the load and render settings to pipeline options.
func (c Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Source:  c.Source,
		File:    c.File,
		Types:   slices.Clone(c.Types),
		Strict:  c.Strict,
		Title:   c.Title,
		Formats: slices.Clone(c.Formats),
	}
}
