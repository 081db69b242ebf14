// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng   = nil           (pure/deterministic unless seeded)
//   • start = (2,2)         clamped into the grid
//   • goal  = (rows-3,cols-3) clamped into the grid

package builder

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// Explicit endpoints; nil means "use the inset defaults".
	start *gridgraph.Coord
	goal  *gridgraph.Coord
}

// Endpoint inset from the top-left and bottom-right corners.
const defaultInset = 2

// newBuilderConfig applies all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// endpoints resolves start and goal for a rows×cols grid.
func (c builderConfig) endpoints(rows, cols int) (start, goal gridgraph.Coord) {
	start = gridgraph.C(clamp(defaultInset, rows), clamp(defaultInset, cols))
	goal = gridgraph.C(clamp(rows-1-defaultInset, rows), clamp(cols-1-defaultInset, cols))
	if c.start != nil {
		start = *c.start
	}
	if c.goal != nil {
		goal = *c.goal
	}

	return start, goal
}

// clamp limits v to [0, n-1].
func clamp(v, n int) int {
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}

	return v
}
