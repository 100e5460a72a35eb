package color

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#000000", Color{0, 0, 0}},
		{"#FFFFFF", Color{255, 255, 255}},
		{"3572A5", Color{0x35, 0x72, 0xA5}},
		{"#f1e05a", Color{0xF1, 0xE0, 0x5A}},
		{"#Aa0b0C", Color{0xAA, 0x0B, 0x0C}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []string{
		"#12G456",
		"#123",
		"",
		"#",
		"#1234567",
		"##123456",
		"#12 456",
		"#+12345",
		"#-12345",
	}

	for _, in := range tests {
		_, err := Parse(in)
		if err == nil {
			t.Errorf("Parse(%q) should fail", in)
			continue
		}
		if !errors.Is(err, ErrFormat) {
			t.Errorf("Parse(%q) error %v should match ErrFormat", in, err)
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("Parse(%q) error should be *FormatError, got %T", in, err)
		}
		if fe.Input != in {
			t.Errorf("FormatError.Input = %q, want %q", fe.Input, in)
		}
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Color{0, 0, 0}, "#000000"},
		{Color{1, 2, 3}, "#010203"},
		{Color{0xAB, 0xCD, 0xEF}, "#ABCDEF"},
		{Color{255, 255, 255}, "#FFFFFF"},
	}

	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("%+v.Hex() = %q, want %q", tt.c, got, tt.want)
		}
		if got := tt.c.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestHex_OutOfRangeUnchecked(t *testing.T) {
	c := Color{R: 300, G: 0, B: 0}
	if got := c.Hex(); got != "#12C0000" {
		t.Errorf("Hex() = %q, want unchecked %q", got, "#12C0000")
	}
	if c.Valid() {
		t.Error("Valid() should be false for R=300")
	}
}

func TestRoundTrip(t *testing.T) {
	// Every value of a single channel, in every position, in both cases.
	for v := 0; v < 256; v++ {
		for _, c := range []Color{{v, 0, 0}, {0, v, 0}, {0, 0, v}, {v, 255 - v, v / 2}} {
			upper := c.Hex()
			lower := "#" + strings.ToLower(upper[1:])
			for _, s := range []string{upper, lower, upper[1:], lower[1:]} {
				got, err := Parse(s)
				if err != nil {
					t.Fatalf("Parse(%q) error: %v", s, err)
				}
				if got != c {
					t.Fatalf("Parse(%q) = %+v, want %+v", s, got, c)
				}
				if got.Hex() != upper {
					t.Fatalf("Hex() of Parse(%q) = %q, want %q", s, got.Hex(), upper)
				}
			}
		}
	}
}

func TestDistance(t *testing.T) {
	a := MustParse("#000000")
	b := MustParse("#010101")
	c := MustParse("#FFFFFF")

	if d := Distance(a, a); d != 0 {
		t.Errorf("Distance(a, a) = %v, want 0", d)
	}
	if d := Distance(a, MustParse("#030400")); d != 5 {
		t.Errorf("Distance(#000000, #030400) = %v, want 5", d)
	}
	if Distance(a, b) >= Distance(a, c) {
		t.Error("#010101 should be closer to black than #FFFFFF")
	}
	if a.Distance(c) != Distance(a, c) {
		t.Error("method and function forms should agree")
	}
}

func TestDistance_MetricLaws(t *testing.T) {
	palette := []Color{
		MustParse("#000000"), MustParse("#FFFFFF"), MustParse("#3572A5"),
		MustParse("#F1E05A"), MustParse("#DEA584"), MustParse("#00ADD8"),
		MustParse("#B07219"), MustParse("#701516"), MustParse("#010101"),
	}

	for _, a := range palette {
		if Distance(a, a) != 0 {
			t.Errorf("Distance(%s, %s) != 0", a, a)
		}
		for _, b := range palette {
			if Distance(a, b) != Distance(b, a) {
				t.Errorf("Distance not symmetric for %s, %s", a, b)
			}
			if a != b && Distance(a, b) <= 0 {
				t.Errorf("Distance(%s, %s) should be positive", a, b)
			}
			for _, c := range palette {
				if Distance(a, b) > Distance(a, c)+Distance(c, b)+1e-9 {
					t.Errorf("triangle inequality violated for %s, %s via %s", a, b, c)
				}
			}
		}
	}
}

func TestContrast(t *testing.T) {
	tests := []struct {
		bg   string
		want Color
	}{
		{"#000000", White},
		{"#FFFFFF", Black},
		{"#F1E05A", Black}, // JavaScript yellow
		{"#3572A5", White}, // Python blue
		{"#701516", White},
	}

	for _, tt := range tests {
		if got := MustParse(tt.bg).Contrast(); got != tt.want {
			t.Errorf("Contrast(%s) = %s, want %s", tt.bg, got, tt.want)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on malformed input")
		}
	}()
	MustParse("nope")
}

func ExampleParse() {
	c, err := Parse("#3572a5")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c.R, c.G, c.B)
	fmt.Println(c.Hex())
	// Output:
	// 53 114 165
	// #3572A5
}

func ExampleDistance() {
	fmt.Printf("%.4f\n", Distance(MustParse("#000000"), MustParse("#010101")))
	// Output:
	// 1.7321
}

func TestTextMarshaling(t *testing.T) {
	c := MustParse("#00add8")
	text, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error: %v", err)
	}
	if string(text) != "#00ADD8" {
		t.Errorf("MarshalText() = %q, want %q", text, "#00ADD8")
	}

	var got Color
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() error: %v", err)
	}
	if got != c {
		t.Errorf("UnmarshalText() = %+v, want %+v", got, c)
	}

	if err := got.UnmarshalText([]byte("zz")); !errors.Is(err, ErrFormat) {
		t.Errorf("UnmarshalText(zz) error = %v, want ErrFormat", err)
	}
}
