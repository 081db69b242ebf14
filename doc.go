// Package gridpath is a playground for shortest-path search on a 2D grid:
// walls, a start, a goal, and three interchangeable strategies that report
// every cell they settle so a caller can animate the search.
//
// 🚀 What is gridpath?
//
//	A small, deterministic engine plus the thin surfaces that drive it:
//		• Grid model: 4-neighbor moves, unit cost, Manhattan heuristic
//		• Strategies: BFS, Dijkstra, A* with pinned tie-breaking
//		• Events: one visitation event per settled cell, then the path
//		• Fixtures: open fields, barrier rows, random noise, DFS mazes
//		• Surfaces: a paced terminal player and a JSON/websocket server
//
// ✨ Why gridpath?
//
//   - Same input, same visit order: golden sequences are testable
//   - The engine never sleeps; pacing belongs to the consumer
//   - Hooks (OnVisit, OnEnqueue) and context cancellation between events
//
// Under the hood, everything is organized into subpackages:
//
//	gridgraph/ - Grid, Coord, neighbors, Manhattan, reachable component
//	core/      - Node, Path, Result, options/hooks, reconstruction, errors
//	bfs/       - breadth-first search
//	dijkstra/  - uniform-cost search with a (dist, row, col) heap
//	astar/     - A* with a (f, g, row, col) heap
//	engine/    - Run dispatcher, Algorithm names, Stream of events
//	builder/   - seeded grid constructors
//	playback/  - delays, ticker-driven playback, ASCII canvas
//	config/    - viper/YAML settings and scenarios
//	server/    - gorilla/mux API and websocket streaming
//
// Quick ASCII example (BFS, path marked '*', settled cells 'o'):
//
//	Soo#
//	*#o#
//	***G
//
//	go run ./cmd/gridpath run -algorithm astar -generator maze -seed 7
package gridpath
