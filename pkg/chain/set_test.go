package chain

import (
	"slices"
	"testing"

	"github.com/matzehuels/langcolors/pkg/color"
)

func TestNewSet_SortedByName(t *testing.T) {
	s := setOf("Zig", "#ec915c", "C", "#555555", "Ada", "#02f88c", "c++", "#f34b7d")

	want := []string{"Ada", "C", "Zig", "c++"} // byte order: uppercase first
	if got := s.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
}

func TestSet_Lookup(t *testing.T) {
	s := setOf("Go", "#00ADD8")

	c, ok := s.Lookup("Go")
	if !ok || c != color.MustParse("#00ADD8") {
		t.Errorf("Lookup(Go) = %v, %v", c, ok)
	}
	if _, ok := s.Lookup("Rust"); ok {
		t.Error("Lookup(Rust) should miss")
	}
}

func TestSet_EntriesIsCopy(t *testing.T) {
	s := setOf("A", "#000000", "B", "#FFFFFF")

	e := s.Entries()
	e[0].Name = "mutated"
	if s.Names()[0] != "A" {
		t.Error("Entries() must not expose internal storage")
	}
}

func TestSet_Colors(t *testing.T) {
	in := map[string]color.Color{"A": color.Black, "B": color.White}
	out := NewSet(in).Colors()
	if len(out) != 2 || out["A"] != color.Black || out["B"] != color.White {
		t.Errorf("Colors() = %v, want %v", out, in)
	}
}

func TestNearest(t *testing.T) {
	s := setOf(
		"Origin", "#000000",
		"Far", "#FFFFFF",
		"Near", "#010101",
		"MidB", "#101010",
		"MidA", "#101010",
	)

	got, ok := Nearest(s, "Origin", 3)
	if !ok {
		t.Fatal("Nearest(Origin) not found")
	}
	var names []string
	for _, n := range got {
		names = append(names, n.Name)
	}
	want := []string{"Near", "MidA", "MidB"}
	if !slices.Equal(names, want) {
		t.Errorf("Nearest() = %v, want %v", names, want)
	}
	if got[0].Distance != color.Distance(color.Black, color.MustParse("#010101")) {
		t.Errorf("Nearest()[0].Distance = %v", got[0].Distance)
	}

	all, _ := Nearest(s, "Origin", 0)
	if len(all) != 4 {
		t.Errorf("Nearest(k=0) returned %d, want 4", len(all))
	}

	if _, ok := Nearest(s, "Missing", 1); ok {
		t.Error("Nearest(Missing) should report not found")
	}
}
