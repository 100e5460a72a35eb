package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrFormat is matched by every [*FormatError].
var ErrFormat = errors.New("invalid color format")

// FormatError reports a string that is not a 6-digit hex web color.
type FormatError struct {
	Input  string // the string passed to Parse
	Reason string // what was wrong with it
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

// Is makes errors.Is(err, ErrFormat) succeed for any FormatError.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// Color is an RGB triple. The zero value is black.
type Color struct {
	R, G, B int
}

// Predefined label colors returned by [Color.Contrast].
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// Parse reads a web color of the form "#RRGGBB" or "RRGGBB".
// Hex digits may be upper or lower case. Only one leading '#' is stripped.
func Parse(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, &FormatError{Input: s, Reason: fmt.Sprintf("want 6 hex digits, got %d characters", len(hex))}
	}

	var ch [3]int
	for i := range ch {
		pair := hex[i*2 : i*2+2]
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return Color{}, &FormatError{Input: s, Reason: fmt.Sprintf("non-hex digits in %q", pair)}
		}
		ch[i] = int(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustParse is like [Parse] but panics on malformed input.
// Intended for tests and package-level constants.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the canonical "#RRGGBB" form with uppercase digits.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer and returns [Color.Hex].
func (c Color) String() string { return c.Hex() }

// Valid reports whether every channel is in [0, 255].
func (c Color) Valid() bool {
	return inRange(c.R) && inRange(c.G) && inRange(c.B)
}

func inRange(v int) bool { return v >= 0 && v <= 255 }

// Distance returns the Euclidean distance to o. See [Distance].
func (c Color) Distance(o Color) float64 { return Distance(c, o) }

// Distance returns the Euclidean distance between a and b in RGB space:
// sqrt((a.R-b.R)² + (a.G-b.G)² + (a.B-b.B)²).
//
// The squares are summed as integers so equal inputs give exactly 0 and the
// result is symmetric bit for bit.
func Distance(a, b Color) float64 {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	return math.Sqrt(float64(dr*dr + dg*dg + db*db))
}

// Contrast returns [Black] or [White], whichever reads better on top of c.
// Lightness is taken from CIE L*a*b*; channels are clamped first.
func (c Color) Contrast() Color {
	l, _, _ := c.colorful().Lab()
	if l > 0.6 {
		return Black
	}
	return White
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(clamp(c.R)) / 255,
		G: float64(clamp(c.G)) / 255,
		B: float64(clamp(c.B)) / 255,
	}
}

func clamp(v int) int {
	return min(max(v, 0), 255)
}

// MarshalText encodes the color as "#RRGGBB".
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a color with [Parse].
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
