package report

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/langcolors/pkg/cache"
	"github.com/matzehuels/langcolors/pkg/chain"
)

// DefaultTitle is used when a report has no title.
const DefaultTitle = "Github Programming Language Colors"

// Format names a rendered output.
type Format string

// Supported formats.
const (
	FormatHTML Format = "html"
	FormatJSON Format = "json"
	FormatDOT  Format = "dot"
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatText Format = "text"
)

// Formats lists every supported format.
var Formats = []Format{FormatHTML, FormatJSON, FormatDOT, FormatSVG, FormatPNG, FormatText}

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("unknown format %q", s)
	}
	return f, nil
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	if f == FormatText {
		return "txt"
	}
	return string(f)
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatDOT:
		return "text/vnd.graphviz; charset=utf-8"
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Report is the input to every renderer.
type Report struct {
	Title     string        `json:"title"`
	ByName    []chain.Entry `json:"by_name"`
	ByNearest chain.Chain   `json:"by_nearest"`
}

// New builds a report from a color set and the chain computed over it.
func New(title string, set chain.Set, c chain.Chain) Report {
	if title == "" {
		title = DefaultTitle
	}
	return Report{Title: title, ByName: set.Entries(), ByNearest: c}
}

// Stats summarizes a report.
type Stats struct {
	Languages     int     `json:"languages"`
	ChainLength   int     `json:"chain_length"`
	TotalDistance float64 `json:"total_distance"`
	MaxStep       float64 `json:"max_step"`
}

// Stats computes summary figures for the chain.
func (r Report) Stats() Stats {
	s := Stats{
		Languages:     len(r.ByName),
		ChainLength:   r.ByNearest.Len(),
		TotalDistance: r.ByNearest.TotalDistance(),
	}
	for _, d := range r.ByNearest.Steps() {
		s.MaxStep = max(s.MaxStep, d)
	}
	return s
}

// Hash returns a content hash of the report, stable across runs.
func (r Report) Hash() string {
	data, _ := json.Marshal(r)
	return cache.Hash(data)
}

// ID returns a name-based UUID derived from the report content.
func (r Report) ID() uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("langcolors:report:"+r.Hash()))
}

// Render produces the bytes of r in format f.
func Render(ctx context.Context, r Report, f Format) ([]byte, error) {
	switch f {
	case FormatHTML:
		return RenderHTML(r)
	case FormatJSON:
		return RenderJSON(r)
	case FormatDOT:
		return []byte(ToDOT(r.ByNearest)), nil
	case FormatSVG:
		return RenderSVG(ctx, ToDOT(r.ByNearest))
	case FormatPNG:
		return RenderPNG(ctx, ToDOT(r.ByNearest))
	case FormatText:
		return []byte(RenderText(r)), nil
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}
