// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// impl_random.go - implementation of Random(density) constructor.
//
// Canonical model:
//   - Bernoulli noise: every cell independently becomes a wall with
//     probability density.
//
// Contract:
//   - 0 ≤ density ≤ 1 (else ErrInvalidDensity).
//   - cfg.rng must be non-nil when 0 < density < 1 (else ErrNeedRandSource);
//     density 0 and 1 are deterministic and need no RNG.
//   - Connectivity between start and goal is NOT guaranteed.
//
// Complexity:
//   - Time: O(rows*cols) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: row-major (r asc, then c asc).

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

const (
	methodRandom = "Random"
	densityMin   = 0.0
	densityMax   = 1.0
)

// Random returns a Constructor that scatters walls with the given density.
func Random(density float64) Constructor {
	return func(g *gridgraph.Grid, cfg builderConfig) error {
		// 1) Validate parameters early (zero side-effects on invalid input).
		if density < densityMin || density > densityMax {
			return fmt.Errorf("%s: density=%.6f not in [%.1f,%.1f]: %w",
				methodRandom, density, densityMin, densityMax, ErrInvalidDensity)
		}
		if cfg.rng == nil && density > densityMin && density < densityMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandom, ErrNeedRandSource)
		}

		// 2) One trial per cell in row-major order.
		for r := 0; r < g.Rows; r++ {
			for c := 0; c < g.Cols; c++ {
				var wall bool
				switch {
				case density == densityMax:
					wall = true
				case density == densityMin:
					wall = false
				default:
					wall = cfg.rng.Float64() < density
				}
				if err := g.SetWall(gridgraph.C(r, c), wall); err != nil {
					return fmt.Errorf("%s: %w", methodRandom, err)
				}
			}
		}

		return nil
	}
}
