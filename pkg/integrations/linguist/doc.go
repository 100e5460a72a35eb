// Package linguist downloads GitHub Linguist's languages.yml catalog.
//
// The client returns the raw YAML bytes; decoding into language records
// lives in the top-level linguist package so that local files and remote
// downloads share one decoder.
package linguist
