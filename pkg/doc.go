// Package pkg provides the core libraries for langcolors.
//
// # Overview
//
// langcolors takes GitHub Linguist's language catalog (languages.yml) and
// orders every language color two ways: alphabetically by name, and as a
// greedy nearest-color chain that starts at the first language and keeps
// stepping to the closest color not yet visited.
//
// # Architecture
//
// The data flow through langcolors:
//
//	languages.yml (GitHub or a local file)
//	         ↓
//	    [integrations/linguist] download with caching and retry
//	         ↓
//	    [linguist] decode records, filter types, parse colors
//	         ↓
//	    [chain] sorted color set + nearest-color chain
//	         ↓
//	    [report] HTML, JSON, DOT, SVG, PNG or terminal text
//
// [pipeline] runs these stages for the CLI and the HTTP server alike.
//
// # Quick Start
//
//	cat, _ := linguist.ReadFile("languages.yml")
//	colors, _, _ := cat.Colors(linguist.ColorOptions{})
//	set := chain.NewSet(colors)
//	rep := report.New(report.DefaultTitle, set, chain.Build(set))
//	html, _ := report.Render(ctx, rep, report.FormatHTML)
//
// # Main Packages
//
// [color] - RGB colors: parsing "#RRGGBB" strings, Euclidean distance, and
// a readable text color for any background.
//
// [chain] - The sorted color [chain.Set], the greedy [chain.Build] and
// k-nearest lookups.
//
// [linguist] - languages.yml records and catalog queries.
//
// [report] - The two-table report and its output formats.
//
// [pipeline] - Load → chain → render with caching and observability hooks.
//
// # Infrastructure
//
// [cache] - File, Redis and null caches behind one interface, plus retry.
//
// [integrations] - Shared HTTP client with caching; [integrations/linguist]
// fetches the catalog.
//
// [config] - Optional TOML configuration file.
//
// [errors] - Coded errors and input validation.
//
// [observability] - Hooks for pipeline, cache and HTTP events.
//
// [buildinfo] - Version information set at build time.
package pkg
