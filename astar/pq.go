package astar

import "github.com/katalvlaran/gridpath/core"

// openItem is a heap entry snapshotting a node's priority at push time.
// An entry is stale once its node was closed or improved (node.G != g).
type openItem struct {
	node *core.Node
	g, f int
}

// openPQ is a min-heap ordered by (f, g, row, col).
type openPQ []*openItem

func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}
	return a.node.At.Less(b.node.At)
}

func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openPQ) Push(x any) { *pq = append(*pq, x.(*openItem)) }

func (pq *openPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
