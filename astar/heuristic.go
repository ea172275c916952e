package astar

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/gridastar/grid"
)

// Heuristic estimates the remaining cost from a cell to the goal, in the
// same integer unit as grid.OrthogonalCost.
type Heuristic func(from, to grid.Position) int

// Euclidean returns floor(sqrt(dx²+dy²)) * 10, the truncated straight-line
// distance. It is the default. Together with the 14-unit diagonal step it is
// not admissible on every map; use Octile for guaranteed-optimal Conn8 routes.
func Euclidean(from, to grid.Position) int {
	dx, dy := from.X-to.X, from.Y-to.Y
	return isqrt(dx*dx+dy*dy) * grid.OrthogonalCost
}

// Manhattan returns 10 * (|dx| + |dy|). Exact on obstacle-free Conn4 grids.
func Manhattan(from, to grid.Position) int {
	dx, dy := abs(from.X-to.X), abs(from.Y-to.Y)
	return (dx + dy) * grid.OrthogonalCost
}

// Chebyshev returns 10 * max(|dx|, |dy|).
func Chebyshev(from, to grid.Position) int {
	dx, dy := abs(from.X-to.X), abs(from.Y-to.Y)
	return max(dx, dy) * grid.OrthogonalCost
}

// Octile returns 10*max + 4*min of |dx| and |dy|: the exact cost of an
// obstacle-free Conn8 route with 10/14 steps. Consistent under Conn8.
func Octile(from, to grid.Position) int {
	dx, dy := abs(from.X-to.X), abs(from.Y-to.Y)
	lo, hi := min(dx, dy), max(dx, dy)
	return hi*grid.OrthogonalCost + lo*(grid.DiagonalCost-grid.OrthogonalCost)
}

// Zero always returns 0, turning the search into uniform-cost (Dijkstra) search.
func Zero(_, _ grid.Position) int {
	return 0
}

var heuristics = map[string]Heuristic{
	"euclidean": Euclidean,
	"manhattan": Manhattan,
	"chebyshev": Chebyshev,
	"octile":    Octile,
	"zero":      Zero,
	"dijkstra":  Zero,
}

// ParseHeuristic maps a configuration name to its Heuristic.
// The empty name selects Euclidean.
func ParseHeuristic(name string) (Heuristic, error) {
	if name == "" {
		return Euclidean, nil
	}
	h, ok := heuristics[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
	return h, nil
}

// HeuristicNames lists the names accepted by ParseHeuristic, sorted.
func HeuristicNames() []string {
	names := make([]string, 0, len(heuristics))
	for n := range heuristics {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// isqrt returns floor(sqrt(n)) for n ≥ 0 using integer correction of the
// float estimate.
func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
