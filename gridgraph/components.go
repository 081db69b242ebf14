package gridgraph

// Reachable collects the connected component containing from: every
// non-wall cell joined to it by orthogonal moves, in BFS discovery order.
// Returns nil when from is off-grid or a wall.
//
// Searches that fail with no path visit exactly this set, which makes it
// the reference for "walled off" checks.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Reachable(from Coord) []Coord {
	if g.IsWall(from) {
		return nil
	}
	seen := make([]bool, g.Rows*g.Cols)
	seen[g.index(from)] = true
	comp := []Coord{from}

	for qi := 0; qi < len(comp); qi++ {
		for _, n := range g.Neighbors(comp[qi]) {
			i := g.index(n)
			if !seen[i] {
				seen[i] = true
				comp = append(comp, n)
			}
		}
	}
	return comp
}

// Connected reports whether a and b lie in the same component.
func (g *Grid) Connected(a, b Coord) bool {
	if g.IsWall(a) || g.IsWall(b) {
		return false
	}
	for _, c := range g.Reachable(a) {
		if c == b {
			return true
		}
	}
	return false
}
