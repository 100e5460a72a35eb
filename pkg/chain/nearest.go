package chain

import (
	"cmp"
	"slices"

	"github.com/matzehuels/langcolors/pkg/color"
)

// Neighbor is an entry together with its distance from a reference color.
type Neighbor struct {
	Entry
	Distance float64 `json:"distance"`
}

// Nearest returns up to k entries of s closest to the entry named name,
// excluding the entry itself. Equal distances keep name order.
// It returns false if name is not in s. A k <= 0 returns every other entry.
func Nearest(s Set, name string, k int) ([]Neighbor, bool) {
	origin, ok := s.Lookup(name)
	if !ok {
		return nil, false
	}

	out := make([]Neighbor, 0, len(s.entries))
	for _, e := range s.entries {
		if e.Name == name {
			continue
		}
		out = append(out, Neighbor{Entry: e, Distance: color.Distance(origin, e.Color)})
	}
	slices.SortStableFunc(out, func(a, b Neighbor) int { return cmp.Compare(a.Distance, b.Distance) })

	if k > 0 && k < len(out) {
		out = out[:k]
	}
	return out, true
}
