// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// impl_open.go - Open() and Barrier(row, gap) constructors.
//
// Contract:
//   • Open leaves every cell walkable.
//   • Barrier walls the whole of row `row` except column `gap`; gap < 0
//     means no gap. row must lie inside the grid, and a non-negative gap
//     must lie inside it too (else ErrConstructFailed).
//   • Neither constructor needs an RNG.
//
// Complexity: O(cols) for Barrier, O(1) for Open.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

const (
	methodOpen    = "Open"
	methodBarrier = "Barrier"
	noGap         = -1
)

// Open returns a Constructor that leaves the grid free of walls.
func Open() Constructor {
	return func(g *gridgraph.Grid, _ builderConfig) error {
		g.Clear()
		return nil
	}
}

// Barrier returns a Constructor that walls row `row` completely, leaving
// a single opening at column gap when gap ≥ 0. Pass a negative gap to
// split the grid into two components.
func Barrier(row, gap int) Constructor {
	return func(g *gridgraph.Grid, _ builderConfig) error {
		if row < 0 || row >= g.Rows {
			return fmt.Errorf("%s: row=%d not in [0,%d): %w",
				methodBarrier, row, g.Rows, ErrConstructFailed)
		}
		if gap >= g.Cols {
			return fmt.Errorf("%s: gap=%d not in [0,%d): %w",
				methodBarrier, gap, g.Cols, ErrConstructFailed)
		}

		for c := 0; c < g.Cols; c++ {
			if c == gap {
				continue
			}
			if err := g.SetWall(gridgraph.C(row, c), true); err != nil {
				return fmt.Errorf("%s: %w", methodBarrier, err)
			}
		}

		return nil
	}
}
