// File: gridgraph/regions_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

func vowels(r rune) bool {
	switch r {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// TestRegions_Simple tests Regions on a 4×3 grid of vowels (land) and
// consonants (water).
//
// Grid:
//
//	X A E X
//	O U X X
//	X X I A
//
// Expected: 2 regions of sizes 4 and 2.
func TestRegions_Simple(t *testing.T) {
	g, err := FromStrings("XAEX", "OUXX", "XXIA")
	if err != nil {
		t.Fatalf("FromStrings failed: %v", err)
	}

	regions := g.Regions(vowels)
	if len(regions) != 2 {
		t.Fatalf("got %d regions; want 2", len(regions))
	}

	// Collect sizes and sort for comparison.
	sizes := []int{len(regions[0]), len(regions[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("region sizes = %v; want %v", sizes, want)
	}
}

// TestRegions_NoDiagonals ensures corner-touching cells stay separate.
//
// Grid:
//
//	A X
//	X A
func TestRegions_NoDiagonals(t *testing.T) {
	g, _ := FromStrings("AX", "XA")
	regions := g.Regions(vowels)
	if len(regions) != 2 {
		t.Fatalf("got %d regions; want 2", len(regions))
	}
	if regions[0][0] != (Coord{0, 0}) || regions[1][0] != (Coord{1, 1}) {
		t.Errorf("regions = %v; want discovery in row-major order", regions)
	}
}

// TestRegions_EmptyAndNoneAccepted tests edge cases:
//   - nothing accepted → zero regions
//   - empty grid → zero regions
//   - single accepted cell → one region of size 1
func TestRegions_EmptyAndNoneAccepted(t *testing.T) {
	g1, _ := FromStrings("XY", "ZW")
	if regions := g1.Regions(vowels); len(regions) != 0 {
		t.Errorf("no vowels: got %d regions; want 0", len(regions))
	}

	if regions := Wrap(nil).Regions(vowels); len(regions) != 0 {
		t.Errorf("empty grid: got %d regions; want 0", len(regions))
	}

	g2, _ := FromStrings("XA")
	regions := g2.Regions(vowels)
	if len(regions) != 1 || len(regions[0]) != 1 {
		t.Fatalf("single vowel: got %v; want one region of size 1", regions)
	}
}

// TestRegionSizes checks per-cell labelling.
func TestRegionSizes(t *testing.T) {
	g, _ := FromStrings("XAEX", "OUXX", "XXIA")
	sizes := g.RegionSizes(vowels)

	cases := []struct {
		at   Coord
		want int
	}{
		{Coord{0, 0}, 0},
		{Coord{0, 1}, 4},
		{Coord{1, 0}, 4},
		{Coord{2, 3}, 2},
		{Coord{2, 2}, 2},
	}
	for _, tc := range cases {
		if got := g.RegionSize(sizes, tc.at); got != tc.want {
			t.Errorf("RegionSize(%v) = %d; want %d", tc.at, got, tc.want)
		}
	}
}
