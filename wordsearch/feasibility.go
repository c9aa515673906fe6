package wordsearch

import "github.com/katalvlaran/gridword/gridgraph"

// feasible checks that every character of target occurs in the index at
// least as many times as target needs it, and returns the anchor: the
// character with the fewest occurrences, ties going to the first one met
// in target order.
func feasible(target []rune, ix *gridgraph.CharIndex, cells int) (rune, bool) {
	need := make(map[rune]int, len(target))
	for _, ch := range target {
		need[ch]++
	}

	var anchor rune
	best := cells + 1
	for _, ch := range target {
		n := ix.Count(ch)
		if n == 0 || n < need[ch] {
			return 0, false
		}
		if n < best {
			best, anchor = n, ch
		}
	}

	return anchor, true
}

// positionsOf returns the indices of ch in target, left to right.
func positionsOf(target []rune, ch rune) []int {
	var out []int
	for i, r := range target {
		if r == ch {
			out = append(out, i)
		}
	}

	return out
}
