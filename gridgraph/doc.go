// Package gridgraph treats a rectangular 2D grid of characters as an
// implicit graph whose vertices are cells and whose edges join
// orthogonally adjacent cells.
//
// What:
//
//   - Grid wraps a [][]rune matrix with Width and Height.
//   - Moves enumerates the in-bounds 4-neighbours of a cell in a fixed order
//     (right, left, down, up), so every traversal built on it is deterministic.
//   - Index builds a CharIndex: each distinct character mapped to the
//     coordinates where it occurs, in row-major scan order.
//   - Regions finds 4-connected components of cells accepted by a predicate.
//
// Why:
//
//   - Word-search puzzles: trace a string through adjacent letters.
//   - Frequency analysis: count how many times each letter is available.
//   - Pruning: a path can never leave the region it starts in.
//
// Complexity:
//
//   - Index:   O(W×H), Memory: O(W×H).
//   - Moves:   O(1).
//   - Regions: O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//
// Grids built with Wrap are not validated; an empty input yields an empty
// Grid whose Moves and Index are empty. Use NewGrid when the input comes from
// an untrusted source.
package gridgraph
