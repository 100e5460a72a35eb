// Package cli implements the langcolors command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/langcolors/pkg/buildinfo"
	"github.com/matzehuels/langcolors/pkg/cache"
	"github.com/matzehuels/langcolors/pkg/config"
	"github.com/matzehuels/langcolors/pkg/observability"
	"github.com/matzehuels/langcolors/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "langcolors"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level. At debug level pipeline, cache
// and HTTP events are logged as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		observability.NewLogHooks(c.Logger).Install()
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "langcolors orders GitHub's language colors by similarity",
		Long: `langcolors downloads GitHub Linguist's language catalog and renders every
language color twice: alphabetically, and as a greedy nearest-color chain that
walks from each color to the closest one not yet visited.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/langcolors/config.toml)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.nearestCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Flags
// =============================================================================

// sourceFlags are the catalog and cache flags shared by every command that
// runs the pipeline. Flags left unset fall back to the config file.
type sourceFlags struct {
	source  string
	file    string
	types   string
	title   string
	strict  bool
	noCache bool
	refresh bool
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.source, "source", "", "catalog URL (default: GitHub Linguist languages.yml)")
	cmd.Flags().StringVar(&f.file, "file", "", "read a local languages.yml instead of downloading")
	cmd.Flags().StringVarP(&f.types, "type", "t", "", "language types to keep: programming, markup, data, prose (comma-separated)")
	cmd.Flags().StringVar(&f.title, "title", "", "report title")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "fail on malformed colors instead of skipping them")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "re-download the catalog even if cached")
}

// options merges the config file with the flags the user actually set.
func (f *sourceFlags) options(cmd *cobra.Command, cfg config.Config) pipeline.Options {
	opts := cfg.PipelineOptions()
	flags := cmd.Flags()
	if flags.Changed("source") {
		opts.Source, opts.File = f.source, ""
	}
	if flags.Changed("file") {
		opts.File = f.file
	}
	if flags.Changed("type") {
		opts.Types = splitList(f.types)
	}
	if flags.Changed("title") {
		opts.Title = f.title
	}
	if flags.Changed("strict") {
		opts.Strict = f.strict
	}
	opts.Refresh = f.refresh
	return opts
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	backend, keyer, err := newCache(ctx, c.cfg.Cache, noCache)
	if err != nil {
		return nil, err
	}
	runner := pipeline.NewRunner(backend, keyer, c.Logger)
	runner.CatalogTTL = c.cfg.Cache.TTL.Duration
	return runner, nil
}

func newCache(ctx context.Context, cfg config.CacheConfig, noCache bool) (cache.Cache, cache.Keyer, error) {
	var keyer cache.Keyer
	if cfg.Prefix != "" {
		keyer = cache.NewScopedKeyer(nil, cfg.Prefix)
	}
	if noCache || cfg.Backend == config.BackendNone {
		return cache.NewNullCache(), keyer, nil
	}
	if cfg.Backend == config.BackendRedis {
		backend, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return backend, keyer, err
	}
	dir := cfg.Dir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return cache.NewNullCache(), keyer, nil
		}
	}
	backend, err := cache.NewFileCache(dir)
	return backend, keyer, err
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/langcolors/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// splitList parses a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
