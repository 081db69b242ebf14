// Package dijkstra implements Dijkstra's shortest-path algorithm on grids.
//
// Every edge weighs 1, so Dijkstra settles cells in the same distance layers
// as BFS; it is kept as the general non-negative-weight reference and as the
// stepping stone to A* (which is Dijkstra plus a heuristic).
//
// Complexity:
//
//   - Time:  O(V log V) with V = cells (E ≤ 4V pushes, each O(log V)).
//   - Space: O(V) for distance and predecessor maps and the heap.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.Grid                     // input grid; read-only within Search
	start   gridgraph.Coord                     // source cell
	goal    gridgraph.Coord                     // target cell
	dist    map[gridgraph.Coord]int             // best known distance; absent means +∞
	prev    map[gridgraph.Coord]gridgraph.Coord // predecessor on the best known route
	settled map[gridgraph.Coord]bool            // finalized cells
	pq      nodePQ                              // lazy min-heap
	track   *core.Tracker
}

// Search computes a shortest path from start to goal on g.
//
// Loop: pop the unsettled cell with minimum distance (ties: lowest row,
// then column), settle it, emit its visitation event, stop if it is the
// goal, otherwise relax every unsettled neighbor with alt = d + 1.
// The search fails with core.ErrNoPath when no unsettled cell has a finite
// distance left.
func Search(g *gridgraph.Grid, start, goal gridgraph.Coord, opts ...core.Option) (*core.Result, error) {
	o, err := core.Apply(opts...)
	if err != nil {
		return nil, err
	}
	if err = core.Validate(g, start, goal); err != nil {
		return nil, err
	}

	V := g.Rows * g.Cols
	r := &runner{
		g:       g,
		start:   start,
		goal:    goal,
		dist:    make(map[gridgraph.Coord]int, V),
		prev:    make(map[gridgraph.Coord]gridgraph.Coord, V),
		settled: make(map[gridgraph.Coord]bool, V),
		pq:      make(nodePQ, 0, V),
		track:   core.NewTracker(o, V),
	}
	if g.IsWall(start) || g.IsWall(goal) {
		return r.track.NotFound()
	}

	r.init()
	return r.process()
}

// distance returns the recorded distance of c, or math.MaxInt for +∞.
func (r *runner) distance(c gridgraph.Coord) int {
	if d, ok := r.dist[c]; ok {
		return d
	}
	return math.MaxInt
}

// init sets the start distance to zero and pushes it onto the heap.
func (r *runner) init() {
	r.dist[r.start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{at: r.start, dist: 0})
	r.track.Enqueue(r.start, 0)
}

// process is the core loop: extract the minimum, settle, emit, relax.
func (r *runner) process() (*core.Result, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.at

		// Skip stale heap entries: already settled or superseded.
		if r.settled[u] || item.dist != r.distance(u) {
			continue
		}

		r.settled[u] = true
		if err := r.track.Visit(u, item.dist); err != nil {
			return r.track.Abort(err)
		}
		if u == r.goal {
			return r.track.Found(core.FromPredecessors(r.prev, r.start, r.goal))
		}

		r.relax(u, item.dist)
	}

	return r.track.NotFound()
}

// relax tries to improve every unsettled neighbor of u through u.
func (r *runner) relax(u gridgraph.Coord, d int) {
	alt := d + 1
	for _, v := range r.g.Neighbors(u) {
		if r.settled[v] {
			continue
		}
		// strictly better only; equal distances keep the first predecessor
		if alt >= r.distance(v) {
			continue
		}
		r.dist[v] = alt
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{at: v, dist: alt})
		r.track.Enqueue(v, alt)
	}
}
