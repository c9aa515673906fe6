// Package gridword traces strings through character grids.
//
// A target is found when its characters can be visited in order by moving
// one cell at a time up, down, left or right, never stepping on a cell twice.
//
//	A B C
//	D E F     "ABEH" -> (0,0) (0,1) (1,1) (2,1)
//	G H I
//
// The module is organised as:
//
//	gridgraph/    rectangular rune grids, character index, 4-neighbour moves, regions
//	wordsearch/   feasibility filter, greedy bidirectional walker, exhaustive walker, path validation
//	fixtures/     YAML catalog of sample matrices and regression cases
//	cmd/gridword  command line runner: run, find, show, list, interactive
//
//	go install github.com/katalvlaran/gridword/cmd/gridword@latest
package gridword
