package linguist

import (
	"bytes"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/langcolors/pkg/color"
	"github.com/matzehuels/langcolors/pkg/errors"
)

// Catalog maps language names to their records.
type Catalog map[string]Language

// Decode parses a languages.yml document.
func Decode(data []byte) (Catalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "empty catalog")
	}
	var raw map[string]Language
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode languages.yml")
	}
	cat := make(Catalog, len(raw))
	for name, lang := range raw {
		lang.Name = name
		cat[name] = lang
	}
	return cat, nil
}

// ReadFile decodes a languages.yml file from disk.
func ReadFile(path string) (Catalog, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "catalog file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return Decode(data)
}

// Names returns the language names in ascending order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup finds a language by exact name, falling back to a case-insensitive
// match on the name or one of its aliases.
func (c Catalog) Lookup(name string) (Language, bool) {
	if l, ok := c[name]; ok {
		return l, true
	}
	for _, n := range c.Names() {
		l := c[n]
		if strings.EqualFold(n, name) {
			return l, true
		}
		for _, a := range l.Aliases {
			if strings.EqualFold(a, name) {
				return l, true
			}
		}
	}
	return Language{}, false
}

// ColorOptions controls [Catalog.Colors].
type ColorOptions struct {
	// Types keeps only languages of these types. Empty keeps all.
	Types []Type

	// Strict fails on the first malformed color instead of skipping it.
	Strict bool
}

// Skipped records a language dropped because its color did not parse.
type Skipped struct {
	Language string
	Color    string
	Err      error
}

// Colors extracts the name -> color mapping for every colored language that
// passes the type filter. Languages are visited in name order, so the
// skipped list and any strict-mode error are deterministic.
func (c Catalog) Colors(opts ColorOptions) (map[string]color.Color, []Skipped, error) {
	out := make(map[string]color.Color)
	var skipped []Skipped

	for _, name := range c.Names() {
		lang := c[name]
		if !lang.HasColor() {
			continue
		}
		if len(opts.Types) > 0 && !slices.Contains(opts.Types, lang.Type) {
			continue
		}
		col, err := color.Parse(lang.Color)
		if err != nil {
			if opts.Strict {
				return nil, nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "language %s", name)
			}
			skipped = append(skipped, Skipped{Language: name, Color: lang.Color, Err: err})
			continue
		}
		out[name] = col
	}
	return out, skipped, nil
}
