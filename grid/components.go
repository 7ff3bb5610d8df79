package grid

// Reachable flood-fills from `from` over Passable cells using the neighbor
// rule and returns a row-major membership slice. A blocked or out-of-bounds
// origin reaches nothing.
//
// It is a plain whole-grid traversal with no stepping, useful as an
// independent connectivity answer for search results.
//
// Time:   O(R×C).
// Memory: O(R×C) for the seen flags and queue.
func (g *Grid) Reachable(from Cell) []bool {
	seen := make([]bool, len(g.blocked))
	if !g.IsPassable(from) {
		return seen
	}

	i0 := g.Index(from)
	seen[i0] = true
	queue := []int{i0}
	for qi := 0; qi < len(queue); qi++ {
		u := g.CellAt(queue[qi])
		for _, d := range Directions {
			v := u.Add(d)
			if !g.IsPassable(v) {
				continue
			}
			vi := g.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return seen
}

// Connected reports whether a Passable path joins a and b.
// Complexity: O(R×C).
func (g *Grid) Connected(a, b Cell) bool {
	if !g.IsPassable(a) || !g.IsPassable(b) {
		return false
	}
	return g.Reachable(a)[g.Index(b)]
}

// Components partitions Passable cells into 4-connected regions. Each region
// lists row-major indices in discovery order; regions are ordered by their
// first cell in row-major order.
// Complexity: O(R×C).
func (g *Grid) Components() [][]int {
	seen := make([]bool, len(g.blocked))
	var comps [][]int
	for i0, b := range g.blocked {
		if b || seen[i0] {
			continue
		}
		seen[i0] = true
		comp := []int{i0}
		for qi := 0; qi < len(comp); qi++ {
			u := g.CellAt(comp[qi])
			for _, d := range Directions {
				v := u.Add(d)
				if !g.IsPassable(v) {
					continue
				}
				vi := g.Index(v)
				if !seen[vi] {
					seen[vi] = true
					comp = append(comp, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
