package gridgraph

// Index scans the grid once, top-to-bottom and left-to-right, and returns
// a CharIndex over every character present. An empty grid yields an empty
// index.
//
// Time:   O(W·H).
// Memory: O(W·H).
func (g *Grid) Index() *CharIndex {
	ix := &CharIndex{
		positions: make(map[rune][]Coord),
		cells:     make(map[Coord]rune, g.Width*g.Height),
	}
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			ch := g.Cells[r][c]
			at := Coord{r, c}
			ix.positions[ch] = append(ix.positions[ch], at)
			ix.cells[at] = ch
		}
	}

	return ix
}

// Positions returns the coordinates of ch in scan order.
// The returned slice must not be modified.
func (ix *CharIndex) Positions(ch rune) []Coord {
	return ix.positions[ch]
}

// Count returns how many cells hold ch.
func (ix *CharIndex) Count(ch rune) int {
	return len(ix.positions[ch])
}

// Contains reports whether c is listed under ch.
func (ix *CharIndex) Contains(ch rune, c Coord) bool {
	got, ok := ix.cells[c]
	return ok && got == ch
}

// Len returns the number of distinct characters.
func (ix *CharIndex) Len() int {
	return len(ix.positions)
}
