// Package bfs provides breadth-first search over a gridgraph.Grid.
package bfs

import (
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// walker encapsulates mutable BFS state for one call.
type walker struct {
	grid    *gridgraph.Grid
	goal    gridgraph.Coord
	queue   []*core.Node
	visited map[gridgraph.Coord]bool
	track   *core.Tracker
}

// Search runs breadth-first search on g from start to goal.
// Returns core.ErrGridNil or core.ErrOutOfBounds for invalid input,
// core.ErrOptionViolation for bad options, core.ErrNoPath when the goal is
// unreachable, or a context/hook error. The Result is non-nil whenever the
// search started.
func Search(g *gridgraph.Grid, start, goal gridgraph.Coord, opts ...core.Option) (*core.Result, error) {
	o, err := core.Apply(opts...)
	if err != nil {
		return nil, err
	}
	if err = core.Validate(g, start, goal); err != nil {
		return nil, err
	}

	n := g.Rows * g.Cols
	w := &walker{
		grid:    g,
		goal:    goal,
		queue:   make([]*core.Node, 0, n),
		visited: make(map[gridgraph.Coord]bool, n),
		track:   core.NewTracker(o, n),
	}
	// walls are never expanded, including a walled start or goal
	if g.IsWall(start) || g.IsWall(goal) {
		return w.track.NotFound()
	}

	// Seed queue with start (no predecessor)
	w.enqueue(&core.Node{At: start})
	return w.loop()
}

// enqueue marks the node's cell visited, reports it and appends it to the queue.
func (w *walker) enqueue(n *core.Node) {
	w.visited[n.At] = true
	w.track.Enqueue(n.At, n.G)
	w.queue = append(w.queue, n)
}

// loop processes the queue until the goal is dequeued, the queue empties,
// or a visit fails.
func (w *walker) loop() (*core.Result, error) {
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue[0] = nil
		w.queue = w.queue[1:]

		if err := w.track.Visit(cur.At, cur.G); err != nil {
			return w.track.Abort(err)
		}
		if cur.At == w.goal {
			return w.track.Found(core.Reconstruct(cur))
		}

		for _, nb := range w.grid.Neighbors(cur.At) {
			if !w.visited[nb] {
				w.enqueue(&core.Node{At: nb, G: cur.G + 1, F: cur.G + 1, Prev: cur})
			}
		}
	}
	return w.track.NotFound()
}
