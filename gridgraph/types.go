// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/gridword.
package gridgraph

import (
	"errors"
	"strconv"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// Coord addresses a single cell by row and column.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return "(" + strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col) + ")"
}

// Grid is a read-only view over a rectangular character matrix.
// Width and Height define dimensions; Cells[row][col] holds the character.
type Grid struct {
	Width, Height int
	Cells         [][]rune
}

// CharIndex maps every character of a Grid to the coordinates where it
// occurs. Positions are kept in row-major order. The index is read-only
// once built.
type CharIndex struct {
	positions map[rune][]Coord
	cells     map[Coord]rune
}
