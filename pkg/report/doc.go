// Package report renders a language color report in several formats.
//
// # Overview
//
// A [Report] holds the two orderings produced by the pipeline: every
// colored language by name, and the greedy nearest-color chain. [Render]
// turns it into bytes for one [Format]:
//
//   - html: a standalone page with a "By Name" and a "By Nearest Color" table
//   - json: both orderings plus chain statistics
//   - dot: the chain as a Graphviz path, nodes filled with each color
//   - svg, png: the dot graph laid out by Graphviz
//   - text: a terminal table with colored swatches
//
// Output is a pure function of the report, so rendered artifacts can be
// cached by [Report.Hash].
package report
