// Package grid models a rectangular 2D occupancy map on which route searches
// run: every cell is either free or blocked, and movement between cells
// follows a fixed set of unit directions.
//
// What:
//
//   - Grid wraps a W×H occupancy map. It is immutable once built and may be
//     read by any number of concurrent searches.
//   - Position is an integer (X, Y) pair; Y grows downward (row index).
//   - Direction is an index 0..N-1 into the active offset table, where N is
//     4 (Conn4) or 8 (Conn8). The opposite of d is (d + N/2) mod N.
//   - StepCost prices a single move: 10 for orthogonal steps, 14 for diagonal
//     steps (integer approximation of 10·√2).
//
// Direction numbering:
//
//	Conn8:  5 6 7      Conn4:    3
//	        4 · 0              2 · 0
//	        3 2 1                1
//
// Construction:
//
//   - New:     dimensions plus a set of blocked positions.
//   - From2D:  [][]int rows; values ≥ BlockedThreshold are blocked.
//   - FromRows: ASCII rows, '.' free and 'O' or '#' blocked.
//
// All constructors deep-copy their input.
//
// Complexity:
//
//   - InBounds, IsBlocked, Neighbor, StepCost: O(1).
//   - ConnectedComponents, ComponentLabels: O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: zero width or height.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadSymbol: an ASCII row holds an unknown cell symbol.
//   - ErrOutOfBounds: a blocked position lies outside the grid.
package grid
