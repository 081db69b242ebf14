// Package dijkstra defines the priority queue used by Dijkstra's
// shortest-path search on unit-weight grids.
//
// Selection rule:
//
//	Among unsettled cells with finite distance, the one with the smallest
//	distance is settled next. Ties are broken by lowest row, then lowest
//	column. The rule is fixed so that visit order is reproducible.
//
// The heap uses the "lazy decrease-key" strategy: an improved distance is
// pushed as a new entry and outdated entries are skipped when popped
// (checked via the settled set and the distance map). The observable
// order is identical to scanning every unsettled cell for the minimum.
package dijkstra

import "github.com/katalvlaran/gridpath/gridgraph"

// nodeItem represents a cell and its tentative distance from the start.
type nodeItem struct {
	at   gridgraph.Coord
	dist int
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, row, col) ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then row-major coordinate.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].at.Less(pq[j].at)
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
