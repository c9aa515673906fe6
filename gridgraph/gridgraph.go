// Package gridgraph provides utilities to treat a 2D grid of characters
// as a graph. It supports:
//
//   - Four-connectivity with a fixed neighbour order (right, left, down, up)
//   - A character index over the grid
//   - Identification of connected regions of accepted cells
package gridgraph

import (
	"strings"
)

// moveOffsets lists the neighbour deltas in the order Moves reports them:
// right, left, down, up.
var moveOffsets = []Coord{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(cells [][]rune) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cp := make([][]rune, h)
	for r := 0; r < h; r++ {
		cp[r] = make([]rune, w)
		copy(cp[r], cells[r])
	}

	return Wrap(cp), nil
}

// FromStrings builds a Grid with one row per string, one cell per rune.
// The same validation as NewGrid applies.
func FromStrings(rows ...string) (*Grid, error) {
	cells := make([][]rune, len(rows))
	for i, row := range rows {
		cells[i] = []rune(row)
	}

	return NewGrid(cells)
}

// Wrap returns a Grid view over cells without copying or validating them.
// Width is taken from the first row. An empty input (no rows, or an empty
// first row) yields a Grid with zero Width and Height.
// The caller must not mutate cells while the Grid is in use.
func Wrap(cells [][]rune) *Grid {
	g := &Grid{Cells: cells}
	if len(cells) == 0 || len(cells[0]) == 0 {
		return g
	}
	g.Height, g.Width = len(cells), len(cells[0])

	return g
}

// Empty reports whether the grid has no cells.
func (g *Grid) Empty() bool {
	return g.Width == 0 || g.Height == 0
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// At returns the character stored at c. c must be in bounds.
func (g *Grid) At(c Coord) rune {
	return g.Cells[c.Row][c.Col]
}

// Moves returns the in-bounds orthogonal neighbours of c in the order
// right, left, down, up. An empty grid yields no moves.
// Complexity: O(1).
func (g *Grid) Moves(c Coord) []Coord {
	moves := make([]Coord, 0, len(moveOffsets))
	for _, d := range moveOffsets {
		nr, nc := c.Row+d.Row, c.Col+d.Col
		if g.InBounds(nr, nc) {
			moves = append(moves, Coord{nr, nc})
		}
	}

	return moves
}

// index maps (row,col) to a row‑major index: row*Width + col.
// Complexity: O(1).
func (g *Grid) index(c Coord) int {
	return c.Row*g.Width + c.Col
}

// Coordinate converts a row‑major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.Width, Col: idx % g.Width}
}

// String renders the grid one row per line, cells separated by a space.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(g.Cells[r][c])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// ManhattanDistance returns |a.Row-b.Row| + |a.Col-b.Col|.
func ManhattanDistance(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
