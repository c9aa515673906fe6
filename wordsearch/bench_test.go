package wordsearch_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridword/wordsearch"
)

// benchGrid builds a deterministic n×n grid over a small alphabet so that
// every letter has many occurrences and the walker has work to do.
func benchGrid(n int) [][]rune {
	rng := rand.New(rand.NewSource(7))
	cells := make([][]rune, n)
	for r := range cells {
		cells[r] = make([]rune, n)
		for c := range cells[r] {
			cells[r][c] = rune('A' + rng.Intn(4))
		}
	}
	return cells
}

func BenchmarkFind_Greedy(b *testing.B) {
	g := benchGrid(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = wordsearch.Find(g, "ABCDABCD")
	}
}

func BenchmarkFind_Exhaustive(b *testing.B) {
	g := benchGrid(200)
	ex := wordsearch.WithMode(wordsearch.ModeExhaustive)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = wordsearch.Find(g, "ABCDABCD", ex)
	}
}
