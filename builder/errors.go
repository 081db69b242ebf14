// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` and the method tag.

package builder

import "errors"

// ErrTooFewCells indicates that rows or cols is smaller than the allowed
// minimum for a grid.
// Usage: if errors.Is(err, ErrTooFewCells) { /* report invalid size */ }.
var ErrTooFewCells = errors.New("builder: grid dimension too small")

// ErrInvalidDensity indicates that a wall density is outside the closed
// interval [0,1].
// Usage: if errors.Is(err, ErrInvalidDensity) { /* clamp or reject */ }.
var ErrInvalidDensity = errors.New("builder: density out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand in the resolved builderConfig (WithSeed/WithRand).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not be applied, e.g. a
// nil Constructor or a barrier row outside the grid.
// Usage: if errors.Is(err, ErrConstructFailed) { /* fix constructor args */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
