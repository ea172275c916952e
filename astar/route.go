package astar

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/gridastar/grid"
)

// Route is an ordered sequence of forward steps from a start cell to a goal
// cell. It carries no positions; Walk and Positions replay it from a start.
// An empty Route means either start == goal or, with Result.Found == false,
// that the goal is unreachable.
type Route struct {
	Conn  grid.Connectivity
	Steps []grid.Direction
}

// Len returns the number of steps.
func (rt Route) Len() int {
	return len(rt.Steps)
}

// Empty reports whether the route has no steps.
func (rt Route) Empty() bool {
	return len(rt.Steps) == 0
}

// Cost sums the movement cost of every step. Summing stops at the first
// direction that is not valid for rt.Conn; Validate reports such routes.
func (rt Route) Cost() int {
	total := 0
	for _, d := range rt.Steps {
		if !rt.Conn.Valid(d) {
			break
		}
		total += rt.Conn.StepCost(d)
	}
	return total
}

// Validate reports ErrBadRoute for the first step whose direction is outside
// 0..N-1 for the route's connectivity.
func (rt Route) Validate() error {
	for i, d := range rt.Steps {
		if !rt.Conn.Valid(d) {
			return fmt.Errorf("%w: step %d direction %d invalid for %v", ErrBadRoute, i, d, rt.Conn)
		}
	}
	return nil
}

// String encodes the route as one decimal digit per step, e.g. "1111".
func (rt Route) String() string {
	var b strings.Builder
	b.Grow(len(rt.Steps))
	for _, d := range rt.Steps {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

// ParseRoute decodes a digit string produced by Route.String.
// Returns ErrBadRoute for a non-digit or a digit outside 0..N-1.
func ParseRoute(s string, conn grid.Connectivity) (Route, error) {
	steps := make([]grid.Direction, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' || !conn.Valid(grid.Direction(c-'0')) {
			return Route{}, fmt.Errorf("%w: symbol %q at %d for %v", ErrBadRoute, c, i, conn)
		}
		steps = append(steps, grid.Direction(c-'0'))
	}
	return Route{Conn: conn, Steps: steps}, nil
}

// Walk yields (step index, position) pairs starting with (0, start) and
// ending at the route's final cell. The sequence is stateless and may be
// iterated any number of times. It ends early at an invalid direction.
func (rt Route) Walk(start grid.Position) iter.Seq2[int, grid.Position] {
	return func(yield func(int, grid.Position) bool) {
		cur := start
		if !yield(0, cur) {
			return
		}
		for i, d := range rt.Steps {
			if !rt.Conn.Valid(d) {
				return
			}
			cur = cur.Add(rt.Conn.Offset(d))
			if !yield(i+1, cur) {
				return
			}
		}
	}
}

// Positions returns every cell visited by the route from start, including
// start and the final cell: Len()+1 positions.
func (rt Route) Positions(start grid.Position) []grid.Position {
	out := make([]grid.Position, 0, len(rt.Steps)+1)
	for _, p := range rt.Walk(start) {
		out = append(out, p)
	}
	return out
}

// End returns the cell the route reaches from start, or the last cell
// before its first invalid direction.
func (rt Route) End(start grid.Position) grid.Position {
	cur := start
	for _, d := range rt.Steps {
		if !rt.Conn.Valid(d) {
			break
		}
		cur = cur.Add(rt.Conn.Offset(d))
	}
	return cur
}

// Verify checks the route against g: valid directions, matching
// connectivity, every visited cell in bounds and free, and arrival at goal. It returns ErrBadRoute with
// the first violation.
func (rt Route) Verify(g *grid.Grid, start, goal grid.Position) error {
	if g == nil {
		return ErrNilGrid
	}
	if rt.Conn != g.Connectivity() {
		return fmt.Errorf("%w: route is %v, grid is %v", ErrBadRoute, rt.Conn, g.Connectivity())
	}
	if err := rt.Validate(); err != nil {
		return err
	}
	for i, p := range rt.Walk(start) {
		if !g.Passable(p) {
			return fmt.Errorf("%w: step %d enters %v which is not passable", ErrBadRoute, i, p)
		}
	}
	if end := rt.End(start); end != goal {
		return fmt.Errorf("%w: route ends at %v, want %v", ErrBadRoute, end, goal)
	}
	return nil
}
