// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: Build(rows, cols, ctor, opts...). Creates g, resolves
//     cfg and endpoints, runs ctor, clears the endpoint cells.
//   - Constructors are declared in impl_*.go.
//   - Determinism: same inputs/options/seed ⇒ identical grids.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

const (
	methodBuild = "Build"
	minGridDim  = 1
)

// Constructor applies a deterministic wall layout to g using the resolved
// builderConfig. g already carries its final Start and Goal, so
// constructors may shape the layout around them. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config.
type Constructor func(g *gridgraph.Grid, cfg builderConfig) error

// Build creates a rows×cols grid, places the endpoints, applies ctor and
// finally clears the start and goal cells so they are always walkable.
// Constructor errors are wrapped as "Build: %w".
//
// Complexity: O(rows*cols) plus the constructor's own cost.
func Build(rows, cols int, ctor Constructor, opts ...BuilderOption) (*gridgraph.Grid, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodBuild, rows, cols, minGridDim, ErrTooFewCells)
	}
	if ctor == nil {
		return nil, fmt.Errorf("%s: nil constructor: %w", methodBuild, ErrConstructFailed)
	}

	g, err := gridgraph.NewGrid(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	cfg := newBuilderConfig(opts...)

	start, goal := cfg.endpoints(rows, cols)
	if err = g.SetStart(start); err != nil {
		return nil, fmt.Errorf("%s: start: %w", methodBuild, err)
	}
	if err = g.SetGoal(goal); err != nil {
		return nil, fmt.Errorf("%s: goal: %w", methodBuild, err)
	}

	if err = ctor(g, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	// Endpoints are in bounds, so SetWall cannot fail here.
	_ = g.SetWall(g.Start, false)
	_ = g.SetWall(g.Goal, false)

	return g, nil
}
