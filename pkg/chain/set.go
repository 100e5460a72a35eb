package chain

import (
	"slices"
	"strings"

	"github.com/matzehuels/langcolors/pkg/color"
)

// Entry pairs a language name with its color.
type Entry struct {
	Name  string      `json:"name"`
	Color color.Color `json:"color"`
}

// Set is an immutable collection of entries with unique names, kept in
// ascending name order. The zero value is an empty set.
type Set struct {
	entries []Entry
	index   map[string]int
}

// NewSet builds a Set from a name to color mapping.
func NewSet(colors map[string]color.Color) Set {
	entries := make([]Entry, 0, len(colors))
	for name, c := range colors {
		entries = append(entries, Entry{Name: name, Color: c})
	}
	slices.SortFunc(entries, func(a, b Entry) int { return strings.Compare(a.Name, b.Name) })

	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.Name] = i
	}
	return Set{entries: entries, index: index}
}

// Len returns the number of entries.
func (s Set) Len() int { return len(s.entries) }

// Entries returns a copy of the entries in ascending name order.
func (s Set) Entries() []Entry { return slices.Clone(s.entries) }

// Names returns the entry names in ascending order.
func (s Set) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the color stored under name.
func (s Set) Lookup(name string) (color.Color, bool) {
	i, ok := s.index[name]
	if !ok {
		return color.Color{}, false
	}
	return s.entries[i].Color, true
}

// Colors returns the set as a plain map.
func (s Set) Colors() map[string]color.Color {
	m := make(map[string]color.Color, len(s.entries))
	for _, e := range s.entries {
		m[e.Name] = e.Color
	}
	return m
}
