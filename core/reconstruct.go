package core

import "github.com/katalvlaran/gridpath/gridgraph"

// Reconstruct walks Prev links from the terminal node back to the node with
// no predecessor, then reverses the collected cells so the Path runs
// start→terminal inclusive. Returns nil for a nil node.
// Complexity: O(L) where L is the path length.
func Reconstruct(n *Node) Path {
	if n == nil {
		return nil
	}
	var path Path
	for cur := n; cur != nil; cur = cur.Prev {
		path = append(path, cur.At)
	}
	reverse(path)
	return path
}

// FromPredecessors rebuilds the path to goal from a predecessor map, where
// prev[v] == u means the best route to v arrives from u. Returns nil if the
// chain ends anywhere other than start (goal was never reached).
func FromPredecessors(prev map[gridgraph.Coord]gridgraph.Coord, start, goal gridgraph.Coord) Path {
	path := Path{goal}
	for cur := goal; cur != start; {
		p, ok := prev[cur]
		if !ok || len(path) > len(prev) {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	reverse(path)
	return path
}

func reverse(p Path) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
