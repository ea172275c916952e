// Package gridastar finds minimum-cost routes on 2D occupancy grids with A*.
//
// What is gridastar?
//
//	A small, deterministic route planner for tile maps:
//		• Grids: immutable free/blocked cells, 4- or 8-connected
//		• Costs: 10 per orthogonal step, 14 per diagonal step
//		• Search: A* with a binary-heap frontier, FIFO ties, lazy decrease-key
//		• Routes: one direction digit per step, e.g. "1111"
//		• Scenarios: the classic '+' obstacle map and its eight layouts
//		• Tooling: console rendering, batch runs, metrics, a CLI
//
// Packages:
//
//	grid           Grid, Position, Direction, connectivity and step costs
//	astar          heuristics, Search, Searcher, Route
//	scenario       '+' maps, start/finish layouts, YAML scenario files
//	render         console map with S/R/F tips, optional colour
//	planner        config, logging, Prometheus metrics, concurrent batches
//	cmd/gridastar  demo, solve and batch commands
//
// Direction digits (y grows downward):
//
//	5 6 7
//	4 · 0
//	3 2 1
//
//	go install github.com/katalvlaran/gridastar/cmd/gridastar@latest
package gridastar
