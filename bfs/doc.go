// Package bfs provides breadth-first search over a gridgraph.Grid, returning
// the visit order and, when the goal is reached, a shortest path.
//
// What
//
//   - Explores cells in non-decreasing step count from the start cell.
//   - Every edge costs 1, so the first time the goal is dequeued its path
//     is a true shortest path.
//   - Emits one visitation event per dequeued cell through core.WithOnVisit,
//     in dequeue order; the goal itself is emitted before the search stops.
//
// Determinism
//
//	The FIFO queue is the only ordering. Neighbors are enqueued in the fixed
//	gridgraph order (down, up, right, left), so the visit sequence is fully
//	reproducible for identical inputs.
//
// Complexity (V = cells, E ≤ 4V)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, visited set and node records.
//
// Usage
//
//	res, err := bfs.Search(g, g.Start, g.Goal,
//	    core.WithContext(ctx),
//	    core.WithOnVisit(func(at gridgraph.Coord, depth int) error { /* draw */ return nil }),
//	)
//	if errors.Is(err, core.ErrNoPath) {
//	    // res.Order still holds every visited cell
//	}
//
// Errors
//
//   - core.ErrGridNil, core.ErrOutOfBounds for invalid input.
//   - core.ErrOptionViolation for bad options.
//   - core.ErrNoPath when the queue empties first.
//   - context errors and wrapped OnVisit errors.
package bfs
