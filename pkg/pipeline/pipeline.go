// Package pipeline provides the load → chain → render pipeline for langcolors.
//
// The CLI and the HTTP server both run reports through a [Runner] so that
// caching, logging, and observability behave the same everywhere.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: fetch languages.yml (or read a local file), decode it, and
//     extract the color set
//  2. Chain: build the greedy nearest-color chain over the set
//  3. Render: produce artifacts in the requested formats
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Formats: []string{"html"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html := result.Artifacts["html"]
package pipeline

import (
	"strings"
	"time"

	"github.com/matzehuels/langcolors/pkg/cache"
	"github.com/matzehuels/langcolors/pkg/chain"
	"github.com/matzehuels/langcolors/pkg/errors"
	"github.com/matzehuels/langcolors/pkg/integrations/linguist"
	lang "github.com/matzehuels/langcolors/pkg/linguist"
	"github.com/matzehuels/langcolors/pkg/report"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultSource is the catalog downloaded when neither Source nor File is set.
	DefaultSource = linguist.DefaultURL

	// DefaultFormat is the output format when none is requested.
	DefaultFormat = string(report.FormatHTML)
)

// ValidFormats is the set of supported output formats.
var ValidFormats = func() map[string]bool {
	m := make(map[string]bool, len(report.Formats))
	for _, f := range report.Formats {
		m[string(f)] = true
	}
	return m
}()

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Source  string   `json:"source,omitempty"` // Catalog URL
	File    string   `json:"file,omitempty"`   // Local languages.yml; wins over Source
	Types   []string `json:"types,omitempty"`  // Language type filter; empty keeps all
	Strict  bool     `json:"strict,omitempty"` // Fail on malformed colors instead of skipping
	Refresh bool     `json:"refresh,omitempty"`

	// Render options
	Title   string   `json:"title,omitempty"`
	Formats []string `json:"formats,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Catalog is the decoded languages.yml.
	Catalog lang.Catalog

	// Set holds every colored language that passed the filters.
	Set chain.Set

	// Chain is the greedy nearest-color ordering of Set.
	Chain chain.Chain

	// Report is the renderer input built from Set and Chain.
	Report report.Report

	// Skipped lists languages dropped for malformed colors.
	Skipped []lang.Skipped

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Languages   int // Records in the catalog
	Colored     int // Languages in the color set
	Skipped     int // Languages dropped for malformed colors
	ChainLength int
	LoadTime    time.Duration
	ChainTime   time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit   bool // Whether the catalog body came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, formatList())
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTypes checks that all language types are known.
func ValidateTypes(types []string) error {
	for _, t := range types {
		if _, err := lang.ParseType(t); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidType, err, "invalid type")
		}
	}
	return nil
}

func formatList() string {
	names := make([]string, len(report.Formats))
	for i, f := range report.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults for the full pipeline.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad validates and sets defaults for the load stage.
func (o *Options) ValidateForLoad() error {
	if o.File != "" {
		if err := errors.ValidatePath(o.File); err != nil {
			return err
		}
	} else {
		if o.Source == "" {
			o.Source = DefaultSource
		}
		if err := errors.ValidateURL(o.Source); err != nil {
			return err
		}
	}
	if err := ValidateTypes(o.Types); err != nil {
		return err
	}
	return nil
}

// ValidateForRender validates and sets defaults for the render stage.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Title == "" {
		o.Title = report.DefaultTitle
	}
	return ValidateFormats(o.Formats)
}

// SourceLabel names where the catalog comes from, for logs and hooks.
func (o *Options) SourceLabel() string {
	if o.File != "" {
		return o.File
	}
	if o.Source == "" {
		return DefaultSource
	}
	return o.Source
}

// ColorOptions returns the catalog extraction options.
func (o *Options) ColorOptions() lang.ColorOptions {
	opts := lang.ColorOptions{Strict: o.Strict}
	for _, s := range o.Types {
		if t, err := lang.ParseType(s); err == nil {
			opts.Types = append(opts.Types, t)
		}
	}
	return opts
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format, Title: o.Title}
}
