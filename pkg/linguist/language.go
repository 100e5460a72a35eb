package linguist

import (
	"fmt"
	"slices"
	"strings"
)

// Type is a Linguist language type.
type Type string

// Language types used by Linguist.
const (
	TypeProgramming Type = "programming"
	TypeMarkup      Type = "markup"
	TypeData        Type = "data"
	TypeProse       Type = "prose"
)

// Types lists every known Type in Linguist's documentation order.
var Types = []Type{TypeProgramming, TypeMarkup, TypeData, TypeProse}

// ParseType validates s (case-insensitive) as a Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Types, t) {
		return "", fmt.Errorf("unknown language type %q (want one of %s)", s, typeList())
	}
	return t, nil
}

func typeList() string {
	names := make([]string, len(Types))
	for i, t := range Types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// Language is one record of languages.yml. Only Color takes part in chain
// building; the rest is carried through for listings and the HTTP API.
type Language struct {
	Name               string   `yaml:"-" json:"name"`
	ID                 int64    `yaml:"language_id" json:"language_id"`
	Type               Type     `yaml:"type" json:"type"`
	Color              string   `yaml:"color,omitempty" json:"color,omitempty"`
	AceMode            string   `yaml:"ace_mode" json:"ace_mode,omitempty"`
	CodemirrorMode     string   `yaml:"codemirror_mode,omitempty" json:"codemirror_mode,omitempty"`
	CodemirrorMimeType string   `yaml:"codemirror_mime_type,omitempty" json:"codemirror_mime_type,omitempty"`
	TMScope            string   `yaml:"tm_scope,omitempty" json:"tm_scope,omitempty"`
	Group              string   `yaml:"group,omitempty" json:"group,omitempty"`
	Wrap               bool     `yaml:"wrap,omitempty" json:"wrap,omitempty"`
	Aliases            []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
	Extensions         []string `yaml:"extensions,omitempty" json:"extensions,omitempty"`
	Filenames          []string `yaml:"filenames,omitempty" json:"filenames,omitempty"`
	Interpreters       []string `yaml:"interpreters,omitempty" json:"interpreters,omitempty"`
}

// HasColor reports whether the record carries a color string.
func (l Language) HasColor() bool { return l.Color != "" }
