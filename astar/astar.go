package astar

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Heuristic estimates the remaining cost between two cells.
type Heuristic func(from, to gridgraph.Coord) int

// searcher holds the mutable state of one A* call.
type searcher struct {
	g      *gridgraph.Grid
	goal   gridgraph.Coord
	h      Heuristic
	open   map[gridgraph.Coord]*core.Node
	closed map[gridgraph.Coord]bool
	pq     openPQ
	track  *core.Tracker
}

// Search runs A* from start to goal on g with the Manhattan heuristic.
func Search(g *gridgraph.Grid, start, goal gridgraph.Coord, opts ...core.Option) (*core.Result, error) {
	return SearchWith(g, start, goal, gridgraph.Manhattan, opts...)
}

// SearchWith runs A* with a caller-supplied heuristic. The shortest-path
// guarantee holds only for admissible, consistent heuristics; a zero
// heuristic degrades A* into Dijkstra with the (g, row, col) tie-break.
func SearchWith(g *gridgraph.Grid, start, goal gridgraph.Coord, h Heuristic, opts ...core.Option) (*core.Result, error) {
	o, err := core.Apply(opts...)
	if err != nil {
		return nil, err
	}
	if err = core.Validate(g, start, goal); err != nil {
		return nil, err
	}
	if h == nil {
		h = gridgraph.Manhattan
	}

	n := g.Rows * g.Cols
	s := &searcher{
		g:      g,
		goal:   goal,
		h:      h,
		open:   make(map[gridgraph.Coord]*core.Node),
		closed: make(map[gridgraph.Coord]bool, n),
		track:  core.NewTracker(o, n),
	}
	if g.IsWall(start) || g.IsWall(goal) {
		return s.track.NotFound()
	}

	s.push(&core.Node{At: start, G: 0, F: h(start, goal)})
	return s.run()
}

// push records n in the open set and queues a heap entry for its current priority.
func (s *searcher) push(n *core.Node) {
	s.open[n.At] = n
	heap.Push(&s.pq, &openItem{node: n, g: n.G, f: n.F})
	s.track.Enqueue(n.At, n.G)
}

// pop removes and returns the open node with the best priority, or nil.
func (s *searcher) pop() *core.Node {
	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(*openItem)
		n := item.node
		if s.closed[n.At] || n.G != item.g {
			continue // stale entry
		}
		delete(s.open, n.At)
		return n
	}
	return nil
}

// run is the main loop: select, close, emit, goal check, expand.
func (s *searcher) run() (*core.Result, error) {
	for {
		cur := s.pop()
		if cur == nil {
			return s.track.NotFound()
		}

		s.closed[cur.At] = true
		if err := s.track.Visit(cur.At, cur.G); err != nil {
			return s.track.Abort(err)
		}
		if cur.At == s.goal {
			return s.track.Found(core.Reconstruct(cur))
		}

		s.expand(cur)
	}
}

// expand opens or improves every neighbor of cur that is not closed.
func (s *searcher) expand(cur *core.Node) {
	tentativeG := cur.G + 1
	for _, nb := range s.g.Neighbors(cur.At) {
		if s.closed[nb] {
			continue
		}
		existing, ok := s.open[nb]
		if !ok {
			s.push(&core.Node{At: nb, G: tentativeG, F: tentativeG + s.h(nb, s.goal), Prev: cur})
			continue
		}
		if tentativeG < existing.G {
			// update the frontier entry in place
			existing.G = tentativeG
			existing.F = tentativeG + s.h(nb, s.goal)
			existing.Prev = cur
			s.push(existing)
		}
	}
}
