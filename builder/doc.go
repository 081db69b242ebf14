// Package builder provides reusable "functional-options"-style constructors
// for gridgraph.Grid fixtures: open fields, barrier rows, random wall noise
// and depth-first mazes. Scenarios, the CLI and the server all obtain their
// starting grids here so that a seed fully determines the layout.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Build(rows, cols, ctor, opts...): allocates the grid, resolves the
//     endpoints, runs ctor, then clears the start and goal cells.
//   - Constructors (Constructor implementations):
//     – Open():             no walls.
//     – Barrier(row, gap):  one wall row with an optional single-cell gap.
//     – Random(density):    each cell is a wall with probability density.
//     – Maze():             randomized depth-first carving; start and goal
//     are always connected.
//   - Configuration primitives (BuilderOption):
//     – WithSeed / WithRand: RNG for stochastic constructors.
//     – WithStart / WithGoal: explicit endpoints; the defaults are (2,2) and
//     (rows-3, cols-3), clamped into the grid.
//
// Guarantees:
//
//   - Determinism: same size, constructor and seed ⇒ identical grids.
//   - Never panics at build time; option constructors panic on nil inputs.
//   - Sentinel errors (ErrTooFewCells, ErrInvalidDensity, ErrNeedRandSource,
//     ErrConstructFailed) wrapped with the method name for errors.Is.
package builder
