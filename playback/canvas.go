package playback

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Cell is the render state of one grid cell.
type Cell uint8

// Cell states, in increasing precedence for overlapping events.
const (
	Free Cell = iota
	Wall
	Visited
	OnPath
	Start
	Goal
)

// Runes used by Canvas.Frame beyond the gridgraph layout alphabet.
const (
	RuneVisited = 'o'
	RunePath    = '*'
)

var cellRunes = [...]byte{
	Free:    gridgraph.RuneFree,
	Wall:    gridgraph.RuneWall,
	Visited: RuneVisited,
	OnPath:  RunePath,
	Start:   gridgraph.RuneStart,
	Goal:    gridgraph.RuneGoal,
}

// Canvas accumulates events on top of a grid snapshot and renders ASCII
// frames. It is not safe for concurrent use.
type Canvas struct {
	rows, cols int
	cells      []Cell
	visits     int
	pathLen    int
}

// NewCanvas snapshots g's walls and endpoints. An endpoint outside the
// grid is not drawn.
func NewCanvas(g *gridgraph.Grid) *Canvas {
	c := &Canvas{rows: g.Rows, cols: g.Cols, cells: make([]Cell, g.Rows*g.Cols)}
	for _, w := range g.Walls() {
		c.cells[c.index(w)] = Wall
	}
	if g.InBounds(g.Start) {
		c.cells[c.index(g.Start)] = Start
	}
	if g.InBounds(g.Goal) {
		c.cells[c.index(g.Goal)] = Goal
	}
	return c
}

// Apply records ev. Start and goal markers are never overwritten, and a
// path cell stays a path cell.
func (c *Canvas) Apply(ev engine.Event) error {
	if ev.At.Row < 0 || ev.At.Row >= c.rows || ev.At.Col < 0 || ev.At.Col >= c.cols {
		return fmt.Errorf("%w: %v", gridgraph.ErrOutOfBounds, ev.At)
	}
	var next Cell
	switch ev.Kind {
	case engine.KindVisit:
		next = Visited
		c.visits++
	case engine.KindPath:
		next = OnPath
		c.pathLen++
	default:
		return nil
	}
	i := c.index(ev.At)
	if c.cells[i] < next {
		c.cells[i] = next
	}
	return nil
}

// At returns the state of cell at. Off-canvas cells report Wall.
func (c *Canvas) At(at gridgraph.Coord) Cell {
	if at.Row < 0 || at.Row >= c.rows || at.Col < 0 || at.Col >= c.cols {
		return Wall
	}
	return c.cells[c.index(at)]
}

// Frame renders the canvas, one line per row, followed by a status line.
func (c *Canvas) Frame() string {
	var sb strings.Builder
	sb.Grow(c.rows*(c.cols+1) + 32)
	for r := 0; r < c.rows; r++ {
		for col := 0; col < c.cols; col++ {
			sb.WriteByte(cellRunes[c.cells[r*c.cols+col]])
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "visited=%d path=%d\n", c.visits, c.pathLen)
	return sb.String()
}

func (c *Canvas) index(at gridgraph.Coord) int { return at.Row*c.cols + at.Col }
