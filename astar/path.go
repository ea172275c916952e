package astar

import (
	"fmt"

	"github.com/katalvlaran/gridastar/grid"
)

// reconstruct walks back-directions from goal to start and returns the
// forward route. Each back-direction b stored at a cell means the forward
// step into that cell was Opposite(b).
func (r *runner) reconstruct() (Route, error) {
	tr := &r.s.tracker
	conn := r.g.Connectivity()
	steps := make([]grid.Direction, 0, 16)

	cur := r.goal
	for limit := r.g.Size(); cur != r.start; limit-- {
		if limit == 0 || !r.g.InBounds(cur) {
			return Route{}, fmt.Errorf("%w: back-pointer chain from %v does not reach %v", ErrInternalInconsistency, r.goal, r.start)
		}
		back := tr.backDirection(r.g.Index(cur))
		steps = append(steps, r.g.Opposite(back))
		cur = r.g.Neighbor(cur, back)
	}

	// reverse: steps were collected goal → start
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return Route{Conn: conn, Steps: steps}, nil
}
