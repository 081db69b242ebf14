// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// impl_maze.go - implementation of Maze() constructor.
//
// Canonical model:
//   - Rooms are the cells whose row and column share parity with the
//     start cell; every other cell starts as a wall.
//   - Randomized depth-first search over rooms (iterative, explicit stack)
//     carves the wall cell between a room and an unvisited room two steps
//     away, yielding a perfect maze over all rooms.
//   - If the goal is not a room, a short corridor toward the start links
//     it to the nearest room, so start and goal are always connected.
//
// Contract:
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(rows*cols).
//   - Space: O(rows*cols) for the visited set and stack.
//
// Determinism:
//   - Candidate directions are shuffled with cfg.rng only; same seed ⇒
//     same maze.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

const methodMaze = "Maze"

// mazeSteps are the room-to-room moves (down, up, right, left).
var mazeSteps = [4][2]int{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}

// Maze returns a Constructor that carves a randomized depth-first maze
// rooted at the start cell.
func Maze() Constructor {
	return func(g *gridgraph.Grid, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodMaze, ErrNeedRandSource)
		}

		// 1) Fill everything; carving only ever clears cells.
		for r := 0; r < g.Rows; r++ {
			for c := 0; c < g.Cols; c++ {
				_ = g.SetWall(gridgraph.C(r, c), true)
			}
		}

		// 2) Depth-first carving from the start room.
		root := g.Start
		visited := map[gridgraph.Coord]bool{root: true}
		stack := []gridgraph.Coord{root}
		_ = g.SetWall(root, false)

		order := [4]int{0, 1, 2, 3}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]

			cfg.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
			advanced := false
			for _, k := range order {
				next := gridgraph.C(cur.Row+mazeSteps[k][0], cur.Col+mazeSteps[k][1])
				if !g.InBounds(next) || visited[next] {
					continue
				}
				between := gridgraph.C(cur.Row+mazeSteps[k][0]/2, cur.Col+mazeSteps[k][1]/2)
				_ = g.SetWall(between, false)
				_ = g.SetWall(next, false)
				visited[next] = true
				stack = append(stack, next)
				advanced = true
				break
			}
			if !advanced {
				stack = stack[:len(stack)-1]
			}
		}

		// 3) Link an off-parity goal to the room lattice.
		linkToRoom(g, g.Goal, root)

		return nil
	}
}

// linkToRoom clears at and, when at is off the room lattice rooted at
// root, steps toward root one axis at a time until it reaches a room.
// Stepping toward root never leaves the grid.
func linkToRoom(g *gridgraph.Grid, at, root gridgraph.Coord) {
	_ = g.SetWall(at, false)
	if parity(at.Row) != parity(root.Row) {
		at.Row += towards(at.Row, root.Row)
		_ = g.SetWall(at, false)
	}
	if parity(at.Col) != parity(root.Col) {
		at.Col += towards(at.Col, root.Col)
		_ = g.SetWall(at, false)
	}
}

func parity(v int) int { return v & 1 }

// towards returns the unit step from v to target. The values differ
// whenever it is called.
func towards(v, target int) int {
	if v > target {
		return -1
	}
	return 1
}
