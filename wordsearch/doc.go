// Package wordsearch locates a target string as a connected path of
// orthogonally adjacent cells in a character grid and returns one such path.
//
// What
//
//   - Exists(cells, target) reports whether the target can be traced.
//   - Find(cells, target) returns one Path (a coordinate per character).
//   - Search is the error-returning form, for callers that want ErrNotFound.
//   - ValidatePath checks a Path against a grid and target.
//
// How
//
//  1. The grid is indexed once: every character mapped to its coordinates.
//  2. Feasibility: each character of the target must occur in the grid at
//     least as often as the target requires it. The rarest such character
//     becomes the anchor.
//  3. Greedy walk (ModeGreedy, the default): for every occurrence of the
//     anchor and every position the anchor holds in the target, extend the
//     path leftward to the first character and then rightward to the last,
//     one cell at a time, taking the first matching unvisited neighbour in
//     the order right, left, down, up. There is no backtracking inside an
//     extension; a dead end fails the whole placement.
//  4. Exhaustive walk (ModeExhaustive): depth-first backtracking from every
//     occurrence of the first character. Finds a path whenever one exists.
//
// Determinism
//
//	Scan order and neighbour order are fixed, so identical inputs always
//	yield the identical Path. The greedy walk is not complete: it can miss
//	a path that a different neighbour choice would have found.
//
// Degenerate inputs
//
//   - Empty grid (no rows, or an empty first row): not found, for any target.
//   - Empty target on a non-empty grid: found, with an empty Path.
//   - Ragged grids are not supported.
//
// Complexity (N = W×H cells, L = len(target), K = anchor occurrences)
//
//   - Greedy:     O(N + K·m·L), m = anchor positions in the target.
//   - Exhaustive: O(N + N·3^L) worst case.
//
// Options
//
//   - DefaultOptions(): greedy mode, no-op hooks.
//   - WithMode(m):       ModeGreedy or ModeExhaustive.
//   - WithOnAttempt(fn): called once per placement attempt.
//   - WithOnStep(fn):    called whenever a coordinate is written into the path.
package wordsearch
