// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates text rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownCell indicates an unexpected rune in a text layout.
	ErrUnknownCell = errors.New("gridgraph: unknown cell rune")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)

// Layout runes used by FromRows and String.
const (
	RuneFree  = '.'
	RuneWall  = '#'
	RuneStart = 'S'
	RuneGoal  = 'G'
)

// Coord identifies a single cell by row and column.
// Two Coords with equal Row and Col are the same cell; Coord is comparable
// and is used directly as a map key by every search strategy.
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord { return Coord{Row: row, Col: col} }

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Less orders coordinates row-major: lower row first, then lower column.
// Priority-driven strategies use it as their final tie-break.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Grid is a fixed-size walkability map with a start and a goal.
// Rows and Cols are fixed at construction; walls[r*Cols+c] is true for
// impassable cells. Grid must not be mutated while a search is running;
// hand the search a Clone if edits may happen concurrently.
//
// Start and Goal are expected in bounds. SetStart and SetGoal enforce it;
// assigning the fields directly does not, and searches then fail with
// core.ErrOutOfBounds.
type Grid struct {
	Rows, Cols int
	Start      Coord
	Goal       Coord
	walls      []bool
}

// neighborOffsets lists orthogonal moves in the fixed order down, up, right, left.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
