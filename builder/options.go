// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on meaningless inputs (nil RNG).
//     Build itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// BuilderOption customizes a build by mutating a builderConfig before the
// constructor runs.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests, scenarios and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStart places the start cell explicitly. Out-of-range coordinates
// surface from Build as gridgraph.ErrOutOfBounds.
func WithStart(at gridgraph.Coord) BuilderOption {
	return func(c *builderConfig) {
		c.start = &at
	}
}

// WithGoal places the goal cell explicitly. Out-of-range coordinates
// surface from Build as gridgraph.ErrOutOfBounds.
func WithGoal(at gridgraph.Coord) BuilderOption {
	return func(c *builderConfig) {
		c.goal = &at
	}
}
