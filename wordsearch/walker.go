package wordsearch

import "github.com/katalvlaran/gridword/gridgraph"

// walker carries the per-call state shared by both strategies.
// It is discarded when the search returns.
type walker struct {
	grid   *gridgraph.Grid
	index  *gridgraph.CharIndex
	target []rune
	opts   Options
}

type visitedSet map[gridgraph.Coord]struct{}

// greedy tries every (seed, position) placement of the anchor in index
// order and returns the first complete path.
func (w *walker) greedy(anchor rune) Path {
	positions := positionsOf(w.target, anchor)
	for _, seed := range w.index.Positions(anchor) {
		for _, i := range positions {
			w.opts.OnAttempt(seed, i)
			if p := w.place(seed, i); p != nil {
				return p
			}
		}
	}

	return nil
}

// place runs one attempt with seed fixed at target position i.
// The leftward pass runs first; its visited cells stay blocked for the
// rightward pass, except the seed, which is released before that pass
// starts and re-marked by it.
func (w *walker) place(seed gridgraph.Coord, i int) Path {
	path := make(Path, len(w.target))
	filled := make([]bool, len(w.target))
	record := func(pos int, at gridgraph.Coord) {
		path[pos] = at
		filled[pos] = true
		w.opts.OnStep(at, pos)
	}
	record(i, seed)

	visited := make(visitedSet)
	if !w.extend(seed, i, -1, visited, record) {
		return nil
	}
	delete(visited, seed)
	if !w.extend(seed, i, +1, visited, record) {
		return nil
	}

	for _, ok := range filled {
		if !ok {
			return nil
		}
	}

	return path
}

// extend walks from `from` (at target index idx) one cell at a time in
// direction dir (-1 toward the start, +1 toward the end) until the end of
// the target is reached. Each step takes the first unvisited neighbour, in
// Moves order, that holds the next required character. Returns false at a
// dead end.
func (w *walker) extend(from gridgraph.Coord, idx, dir int, visited visitedSet, record func(int, gridgraph.Coord)) bool {
	end := 0
	if dir > 0 {
		end = len(w.target) - 1
	}

	cur := from
	for {
		visited[cur] = struct{}{}
		if idx == end {
			return true
		}
		next, ok := w.step(cur, w.target[idx+dir], visited)
		if !ok {
			return false
		}
		idx += dir
		record(idx, next)
		cur = next
	}
}

// step picks the first unvisited neighbour of cur listed under want.
func (w *walker) step(cur gridgraph.Coord, want rune, visited visitedSet) (gridgraph.Coord, bool) {
	for _, n := range w.grid.Moves(cur) {
		if _, seen := visited[n]; seen {
			continue
		}
		if w.index.Contains(want, n) {
			return n, true
		}
	}

	return gridgraph.Coord{}, false
}

// exhaustive runs a depth-first backtracking search from every occurrence
// of the first target character. Starts whose region of target characters
// is smaller than the target are skipped.
func (w *walker) exhaustive() Path {
	alphabet := make(map[rune]struct{}, len(w.target))
	for _, ch := range w.target {
		alphabet[ch] = struct{}{}
	}
	sizes := w.grid.RegionSizes(func(r rune) bool {
		_, ok := alphabet[r]
		return ok
	})

	path := make(Path, 0, len(w.target))
	visited := make(visitedSet)
	for _, start := range w.index.Positions(w.target[0]) {
		if w.grid.RegionSize(sizes, start) < len(w.target) {
			continue
		}
		w.opts.OnAttempt(start, 0)
		visited[start] = struct{}{}
		path = append(path[:0], start)
		w.opts.OnStep(start, 0)
		if w.descend(start, 0, &path, visited) {
			return path
		}
		delete(visited, start)
	}

	return nil
}

func (w *walker) descend(cur gridgraph.Coord, pos int, path *Path, visited visitedSet) bool {
	if pos == len(w.target)-1 {
		return true
	}
	want := w.target[pos+1]
	for _, n := range w.grid.Moves(cur) {
		if _, seen := visited[n]; seen || !w.index.Contains(want, n) {
			continue
		}
		visited[n] = struct{}{}
		*path = append(*path, n)
		w.opts.OnStep(n, pos+1)
		if w.descend(n, pos+1, path, visited) {
			return true
		}
		*path = (*path)[:len(*path)-1]
		delete(visited, n)
	}

	return false
}
