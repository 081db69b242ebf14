// Package gridgraph provides utilities to treat a 2D wall map as a graph.
// It supports:
//
//   - Orthogonal (4-neighbor) adjacency over non-wall cells
//   - Manhattan distance as the search heuristic
//   - Identification of the connected component around a cell
//   - Parsing and rendering a compact text layout
package gridgraph

import (
	"fmt"
	"strings"
)

// NewGrid constructs an open rows×cols grid with Start at the top-left
// corner and Goal at the bottom-right corner.
// Returns ErrEmptyGrid if rows or cols is less than one.
// Complexity: O(R×C) time and memory.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d", ErrEmptyGrid, rows, cols)
	}

	return &Grid{
		Rows:  rows,
		Cols:  cols,
		Start: Coord{0, 0},
		Goal:  Coord{rows - 1, cols - 1},
		walls: make([]bool, rows*cols),
	}, nil
}

// FromRows parses a text layout, one string per row, using the runes
// '.' (free), '#' (wall), 'S' (start) and 'G' (goal).
// When no 'S' or 'G' is present the corner defaults of NewGrid are kept.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrUnknownCell on bad input.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(row), w)
		}
	}

	g, err := NewGrid(len(rows), w)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		for c, ch := range []byte(row) {
			switch ch {
			case RuneFree:
			case RuneWall:
				g.walls[g.index(Coord{r, c})] = true
			case RuneStart:
				g.Start = Coord{r, c}
			case RuneGoal:
				g.Goal = Coord{r, c}
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownCell, ch, Coord{r, c})
			}
		}
	}

	return g, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// IsWall reports whether c is an impassable cell.
// Off-grid coordinates are reported as walls.
func (g *Grid) IsWall(c Coord) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.walls[g.index(c)]
}

// SetWall marks or clears the wall at c.
func (g *Grid) SetWall(c Coord, wall bool) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.walls[g.index(c)] = wall
	return nil
}

// ToggleWall flips the wall flag at c and returns the new value.
func (g *Grid) ToggleWall(c Coord) (bool, error) {
	if !g.InBounds(c) {
		return false, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	i := g.index(c)
	g.walls[i] = !g.walls[i]
	return g.walls[i], nil
}

// SetStart moves the start marker. The cell keeps its wall flag.
func (g *Grid) SetStart(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: start %v", ErrOutOfBounds, c)
	}
	g.Start = c
	return nil
}

// SetGoal moves the goal marker. The cell keeps its wall flag.
func (g *Grid) SetGoal(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: goal %v", ErrOutOfBounds, c)
	}
	g.Goal = c
	return nil
}

// Clear removes every wall, keeping dimensions and endpoints.
func (g *Grid) Clear() {
	for i := range g.walls {
		g.walls[i] = false
	}
}

// Walls returns the wall coordinates in row-major order.
func (g *Grid) Walls() []Coord {
	var out []Coord
	for i, w := range g.walls {
		if w {
			out = append(out, g.coordinate(i))
		}
	}
	return out
}

// Clone returns a deep copy that shares no state with g.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.walls = make([]bool, len(g.walls))
	copy(cp.walls, g.walls)
	return &cp
}

// Neighbors returns the orthogonal neighbors of c that are in bounds and
// not walls, in the fixed order down, up, right, left.
// Off-grid results are dropped, never signaled.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{c.Row + d[0], c.Col + d[1]}
		if g.InBounds(n) && !g.walls[g.index(n)] {
			out = append(out, n)
		}
	}
	return out
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|, the exact unit-cost
// distance on an open 4-connected grid and therefore an admissible,
// consistent heuristic for it.
func Manhattan(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// String renders the grid using the FromRows alphabet, one line per row.
// The goal marker wins over the start marker when both share a cell.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Rows * (g.Cols + 1))
	for _, line := range g.Layout() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Layout renders the grid as FromRows input. FromRows(g.Layout()) yields
// an equal grid unless start or goal sits on a wall.
func (g *Grid) Layout() []string {
	out := make([]string, g.Rows)
	row := make([]byte, g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			at := Coord{r, c}
			switch {
			case at == g.Goal:
				row[c] = RuneGoal
			case at == g.Start:
				row[c] = RuneStart
			case g.walls[g.index(at)]:
				row[c] = RuneWall
			default:
				row[c] = RuneFree
			}
		}
		out[r] = string(row)
	}
	return out
}

// index maps c to a row-major index: Row*Cols + Col.
func (g *Grid) index(c Coord) int {
	return c.Row*g.Cols + c.Col
}

// coordinate converts a row-major index back to a Coord.
func (g *Grid) coordinate(i int) Coord {
	return Coord{i / g.Cols, i % g.Cols}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
