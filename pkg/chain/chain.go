package chain

import (
	"slices"

	"github.com/matzehuels/langcolors/pkg/color"
)

// Chain is the ordered output of [Build]. Every name appears at most once.
type Chain []Entry

// Build computes the greedy nearest-color chain over s.
//
// The outer loop runs exactly s.Len() times. On the first iteration the
// "from" entry itself is appended before its nearest neighbor; on every later
// iteration only the nearest unused neighbor (if any) is appended. An empty
// set yields an empty chain.
func Build(s Set) Chain {
	n := len(s.entries)
	out := make(Chain, 0, n)
	used := make([]bool, n)

	for f := range s.entries {
		nearest := nearestUnused(s.entries, f, used)

		if f == 0 {
			used[f] = true
			out = append(out, s.entries[f])
		}
		if nearest >= 0 {
			used[nearest] = true
			out = append(out, s.entries[nearest])
		}
	}
	return out
}

// nearestUnused returns the index of the unused entry closest to entries[from],
// or -1 if every other entry is used. A strict comparison keeps the first
// candidate in name order on ties.
func nearestUnused(entries []Entry, from int, used []bool) int {
	best := -1
	var bestDist float64
	origin := entries[from].Color

	for i, e := range entries {
		if i == from || used[i] {
			continue
		}
		d := color.Distance(origin, e.Color)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Len returns the number of entries in the chain.
func (c Chain) Len() int { return len(c) }

// Names returns the chain's names in order.
func (c Chain) Names() []string {
	names := make([]string, len(c))
	for i, e := range c {
		names[i] = e.Name
	}
	return names
}

// Steps returns the distance between each entry and its predecessor.
// The result has one element fewer than the chain; nil for chains shorter than 2.
func (c Chain) Steps() []float64 {
	if len(c) < 2 {
		return nil
	}
	steps := make([]float64, len(c)-1)
	for i := 1; i < len(c); i++ {
		steps[i-1] = color.Distance(c[i-1].Color, c[i].Color)
	}
	return steps
}

// TotalDistance sums [Chain.Steps].
func (c Chain) TotalDistance() float64 {
	var total float64
	for _, d := range c.Steps() {
		total += d
	}
	return total
}

// Contains reports whether name appears in the chain.
func (c Chain) Contains(name string) bool {
	return slices.ContainsFunc(c, func(e Entry) bool { return e.Name == name })
}
