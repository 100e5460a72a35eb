// Package linguist decodes GitHub Linguist's languages.yml catalog and
// extracts the color set used by the chain builder.
//
// # Catalog
//
// [Decode] turns the YAML mapping of language name to record into a
// [Catalog]. Only the top-level shape is checked: a document that is not a
// mapping of records fails with an INVALID_CATALOG error. Unknown record
// keys are ignored so new upstream fields never break decoding.
//
// # Colors
//
// [Catalog.Colors] drops languages without a color, optionally filters by
// [Type], and parses each color. Malformed colors are either skipped and
// reported (the default) or fail the whole extraction when
// [ColorOptions.Strict] is set.
package linguist
