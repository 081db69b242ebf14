package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for search execution.
var (
	// ErrNoPath indicates the frontier emptied before the goal was settled.
	ErrNoPath = errors.New("core: no path found")

	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("core: grid is nil")

	// ErrOutOfBounds is returned when start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("core: start or goal out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("core: invalid option supplied")

	// ErrVisitLimit is returned when more cells would be settled than WithMaxVisits allows.
	ErrVisitLimit = errors.New("core: visit limit exceeded")
)

// Node is the per-cell search record: cost so far G, priority F (A* only;
// equal to G elsewhere) and the predecessor on the best known route.
// Prev is nil for the start node.
type Node struct {
	At   gridgraph.Coord
	G    int
	F    int
	Prev *Node
}

// Path is an ordered sequence of coordinates from start to goal inclusive.
type Path []gridgraph.Coord

// Edges returns the number of steps in the path (len-1), or 0 when empty.
func (p Path) Edges() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Validate checks that p is a walkable route on g: every cell in bounds and
// not a wall, and every consecutive pair exactly one orthogonal step apart.
func (p Path) Validate(g *gridgraph.Grid) error {
	for i, c := range p {
		if g.IsWall(c) {
			return fmt.Errorf("core: path cell %d %v is a wall or off-grid", i, c)
		}
		if i > 0 && gridgraph.Manhattan(p[i-1], c) != 1 {
			return fmt.Errorf("core: path step %d %v→%v is not a unit move", i, p[i-1], c)
		}
	}
	return nil
}

// Result holds the outcome of one search call:
//   - Order: settled cells in visitation order.
//   - Path:  start..goal inclusive, nil when Found is false.
//   - Cost:  number of edges on Path.
//   - Found: whether the goal was settled.
type Result struct {
	Order []gridgraph.Coord `json:"order"`
	Path  Path              `json:"path"`
	Cost  int               `json:"cost"`
	Found bool              `json:"found"`
}

// Validate checks the (grid, start, goal) triple shared by all strategies.
func Validate(g *gridgraph.Grid, start, goal gridgraph.Coord) error {
	if g == nil {
		return ErrGridNil
	}
	if !g.InBounds(start) || !g.InBounds(goal) {
		return fmt.Errorf("%w: start=%v goal=%v grid=%dx%d", ErrOutOfBounds, start, goal, g.Rows, g.Cols)
	}
	return nil
}
