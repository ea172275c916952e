// Package astar finds minimum-cost routes between two cells of a grid.Grid
// with the A* algorithm.
//
// Overview:
//
//   - A search expands cells in order of f = g + h, where g is the exact cost
//     travelled from the start and h is a Heuristic estimate of the remaining cost.
//   - Costs are integers: 10 per orthogonal step and 14 per diagonal step (Conn8).
//   - The result is a Route, a compact list of forward directions that can be
//     printed as a digit string ("1111"), replayed into positions, or verified.
//
// Key features:
//
//   - Reusable scratch: a Searcher owns its frontier, visited flags and
//     back-direction map; they are reset, not reallocated, between searches.
//   - Lazy decrease-key: improving a queued cell pushes a new heap entry and
//     bumps the cell's generation stamp; superseded entries are dropped on pop.
//   - Deterministic ties: equal priorities pop in insertion order.
//   - Pluggable heuristics: Euclidean (default), Octile, Manhattan, Chebyshev, Zero.
//   - Hooks: WithOnExpand and WithOnEnqueue observe the search without
//     affecting it. WithMaxExpansions caps runaway searches.
//
// Heuristic choice:
//
// The default Euclidean estimate truncates sqrt(dx²+dy²) and scales by 10.
// Combined with 14-unit diagonals it can overestimate on long diagonal runs,
// so routes are not guaranteed optimal on every map. Octile is exact on an
// empty Conn8 grid and consistent, Manhattan is exact on an empty Conn4 grid,
// and Zero reduces the search to Dijkstra.
//
// Performance and complexity:
//
//   - Time:  O(W·H·d·log(W·H)), d = 4 or 8.
//   - Space: O(W·H) scratch plus up to O(W·H·d) heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidInput and its children ErrNilGrid, ErrStartOutOfBounds,
//     ErrGoalOutOfBounds, ErrStartBlocked, ErrGoalBlocked.
//   - ErrOptionViolation for invalid option values.
//   - ErrExpansionLimit when WithMaxExpansions stops the search.
//   - ErrInternalInconsistency for a broken frontier invariant (a defect).
//
// An unreachable goal is not an error: Result.Found is false and the Route is empty.
//
// Concurrency:
//
// A Grid is read-only and may be shared. A Searcher may not: use one per goroutine.
//
// Example:
//
//	g, _ := grid.FromRows([]string{
//	    ".....",
//	    ".OOO.",
//	    ".....",
//	})
//	res, err := astar.Search(g, grid.Pos(0, 1), grid.Pos(4, 1))
//	if err != nil {
//	    // handle invalid input
//	}
//	fmt.Println(res.Found, res.Cost, res.Route)
package astar
