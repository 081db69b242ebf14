// Package astar implements A* search on a gridgraph.Grid using the
// Manhattan heuristic.
//
// What
//
//   - Open set: coordinate → core.Node{G, F, Prev}, seeded with the start
//     (G=0, F=h(start, goal)).
//   - Closed set: settled coordinates; never re-expanded.
//   - Selection: minimum F, ties broken by lowest G, then lowest row, then
//     lowest column. The rule is fixed and makes visit order reproducible.
//   - Frontier entries are updated in place when a cheaper route is found;
//     that is re-prioritisation of an open node, not re-expansion.
//
// Correctness
//
//	Manhattan distance is admissible and consistent for 4-directional unit
//	grids, so the first time the goal is popped its G is the true
//	shortest-path cost.
//
// Complexity (V = cells)
//
//   - Time:   O(V log V) worst case; typically far fewer pops than Dijkstra.
//   - Memory: O(V).
//
// Errors
//
//	Same contract as bfs and dijkstra: core.ErrNoPath is an expected outcome
//	returned with a non-nil Result.
package astar
