package wordsearch

import (
	"fmt"

	"github.com/katalvlaran/gridword/gridgraph"
)

// ValidatePath checks that path traces target through cells: same length,
// every coordinate in bounds and holding the matching character, consecutive
// coordinates one step apart, no cell used twice.
// The first violation is returned wrapped around one of ErrPathLength,
// ErrOutOfBounds, ErrCharMismatch, ErrRevisit or ErrNotAdjacent.
func ValidatePath(cells [][]rune, target string, path Path) error {
	g := gridgraph.Wrap(cells)
	runes := []rune(target)
	if len(path) != len(runes) {
		return fmt.Errorf("%w: got %d coordinates, want %d", ErrPathLength, len(path), len(runes))
	}

	seen := make(map[gridgraph.Coord]int, len(path))
	for i, c := range path {
		if !g.InBounds(c.Row, c.Col) {
			return fmt.Errorf("%w: %v at position %d", ErrOutOfBounds, c, i)
		}
		if got := g.At(c); got != runes[i] {
			return fmt.Errorf("%w: %v holds %q, position %d wants %q", ErrCharMismatch, c, got, i, runes[i])
		}
		if j, dup := seen[c]; dup {
			return fmt.Errorf("%w: %v at positions %d and %d", ErrRevisit, c, j, i)
		}
		seen[c] = i
		if i > 0 && gridgraph.ManhattanDistance(path[i-1], c) != 1 {
			return fmt.Errorf("%w: %v -> %v at position %d", ErrNotAdjacent, path[i-1], c, i)
		}
	}

	return nil
}
