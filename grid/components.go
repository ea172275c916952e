package grid

// ConnectedComponents finds all contiguous regions of free cells according to
// the grid's connectivity. Each component is a slice of row-major indices in
// BFS order; components are listed in row-major order of their first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	labels, count := g.ComponentLabels()
	comps := make([][]int, count)
	seen := make([]bool, len(labels))
	// Re-walk in BFS order so each component lists its cells by discovery.
	for i, l := range labels {
		if l < 0 || seen[i] {
			continue
		}
		queue := []int{i}
		seen[i] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comps[l] = append(comps[l], u)
			up := g.Coordinate(u)
			for _, d := range g.offsets {
				v := up.Add(d)
				if !g.Passable(v) {
					continue
				}
				vi := g.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
	}
	return comps
}

// ComponentLabels labels every free cell with the index of its connected
// component; blocked cells are labeled -1. It returns the labels (row-major)
// and the number of components.
//
// Two free cells share a label iff a route exists between them.
// Time: O(W·H·d), Memory: O(W·H).
func (g *Grid) ComponentLabels() (labels []int, count int) {
	total := g.Size()
	labels = make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	queue := make([]int, 0, total)

	for i0 := 0; i0 < total; i0++ {
		if g.blocked[i0] || labels[i0] >= 0 {
			continue
		}
		queue = append(queue[:0], i0)
		labels[i0] = count
		for qi := 0; qi < len(queue); qi++ {
			up := g.Coordinate(queue[qi])
			for _, d := range g.offsets {
				v := up.Add(d)
				if !g.Passable(v) {
					continue
				}
				vi := g.Index(v)
				if labels[vi] < 0 {
					labels[vi] = count
					queue = append(queue, vi)
				}
			}
		}
		count++
	}
	return labels, count
}

// Connected reports whether a and b are free cells of the same component.
// Complexity: O(W·H·d).
func (g *Grid) Connected(a, b Position) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	labels, _ := g.ComponentLabels()
	return labels[g.Index(a)] == labels[g.Index(b)]
}
