package wordsearch

import (
	"github.com/katalvlaran/gridword/gridgraph"
)

// Exists reports whether target can be traced through cells.
func Exists(cells [][]rune, target string, opts ...Option) bool {
	_, ok := Find(cells, target, opts...)
	return ok
}

// Find returns one path tracing target through cells, or (nil, false).
//
// An empty target on a non-empty grid yields an empty, non-nil Path.
// An empty grid yields (nil, false) for every target. Invalid options also
// yield (nil, false); use Search to tell them apart.
func Find(cells [][]rune, target string, opts ...Option) (Path, bool) {
	p, err := Search(cells, target, opts...)
	if err != nil {
		return nil, false
	}

	return p, true
}

// Search is Find with explicit errors: ErrNotFound when no path exists,
// ErrOptionViolation for an invalid Option.
//
// Steps:
//  1. Reject an empty grid, accept an empty target.
//  2. Index the grid and run the feasibility filter to pick the anchor.
//  3. Walk according to the selected Mode.
func Search(cells [][]rune, target string, opts ...Option) (Path, error) {
	o := buildOptions(opts)
	if o.err != nil {
		return nil, o.err
	}

	g := gridgraph.Wrap(cells)
	if g.Empty() {
		return nil, ErrNotFound
	}
	runes := []rune(target)
	if len(runes) == 0 {
		return Path{}, nil
	}

	ix := g.Index()
	anchor, ok := feasible(runes, ix, g.Width*g.Height)
	if !ok {
		return nil, ErrNotFound
	}

	w := &walker{grid: g, index: ix, target: runes, opts: o}
	var p Path
	switch o.Mode {
	case ModeExhaustive:
		p = w.exhaustive()
	default:
		p = w.greedy(anchor)
	}
	if p == nil {
		return nil, ErrNotFound
	}

	return p, nil
}

// IsValidPosition reports whether (row,col) lies inside cells.
// Always false for an empty grid.
func IsValidPosition(cells [][]rune, row, col int) bool {
	return gridgraph.Wrap(cells).InBounds(row, col)
}

// ValidMoves returns the in-bounds orthogonal neighbours of (row,col) in
// the order right, left, down, up.
func ValidMoves(cells [][]rune, row, col int) []gridgraph.Coord {
	return gridgraph.Wrap(cells).Moves(gridgraph.Coord{Row: row, Col: col})
}
