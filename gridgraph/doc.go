// Package gridgraph treats a 2D grid of walkable and blocked cells as an
// implicit, unit-weight, 4-connected graph.
//
// What:
//
//   - Grid owns a fixed rows×cols wall map plus Start and Goal coordinates.
//   - Neighbors yields the orthogonal, in-bounds, non-wall cells around a Coord.
//   - Manhattan is the admissible, consistent heuristic for that graph.
//   - Reachable collects the connected component ("island") around a cell.
//
// Why:
//
//   - Search strategies (bfs, dijkstra, astar) need one shared neighbor model
//     so that their results are comparable cell for cell.
//   - Grid editors mutate walls and endpoints between searches; Clone lets a
//     session hand an immutable snapshot to a running search.
//
// Determinism:
//
//	Neighbors always lists candidates in the order down, up, right, left.
//	Every strategy enqueues neighbors in that order, so visit sequences are
//	reproducible for identical inputs.
//
// Complexity:
//
//   - Neighbors:  O(1), at most 4 results.
//   - Reachable:  O(R×C) time, O(R×C) memory.
//   - FromRows:   O(R×C).
//
// Text format (FromRows / String):
//
//	'.' free   '#' wall   'S' start   'G' goal
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCell: unexpected rune in a text layout.
//   - ErrOutOfBounds: a setter received a coordinate outside the grid.
package gridgraph
