package astar

import "github.com/katalvlaran/gridastar/grid"

// tracker is the closed set plus the direction map. visited is monotonic
// within one search; back[cell] points from cell toward the predecessor that
// produced its best known priority.
type tracker struct {
	visited []bool
	back    []grid.Direction
}

// reset prepares the tracker for a grid of n cells, reusing buffers.
func (t *tracker) reset(n int) {
	t.visited = resize(t.visited, n)
	t.back = resize(t.back, n)
}

func (t *tracker) markVisited(cell int) { t.visited[cell] = true }

func (t *tracker) isVisited(cell int) bool { return t.visited[cell] }

func (t *tracker) setBackDirection(cell int, d grid.Direction) { t.back[cell] = d }

func (t *tracker) backDirection(cell int) grid.Direction { return t.back[cell] }
