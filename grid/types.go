// Package grid defines core types, options and cost constants for the
// occupancy grid used by route searches.
package grid

import "fmt"

// Movement costs in integer units. DiagonalCost approximates 10·√2 ≈ 14.14.
const (
	OrthogonalCost = 10
	DiagonalCost   = 14
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: E, S, W, N.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: E, SE, S, SW, W, NW, N, NE.
	Conn8
)

// Directions returns the number of directions N for the connectivity (4 or 8).
func (c Connectivity) Directions() int {
	if c == Conn8 {
		return 8
	}
	return 4
}

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// ParseConnectivity maps a direction count (4 or 8) to a Connectivity.
func ParseConnectivity(n int) (Connectivity, error) {
	switch n {
	case 4:
		return Conn4, nil
	case 8:
		return Conn8, nil
	default:
		return Conn4, fmt.Errorf("grid: direction count must be 4 or 8, got %d", n)
	}
}

// Position is a cell coordinate. X is the column, Y is the row.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns p shifted by the offset o.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// String implements fmt.Stringer as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is an index into the offset table of a Connectivity.
type Direction int

// Offset tables. Even indices in offsets8 are orthogonal, odd indices diagonal.
var (
	offsets4 = []Position{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	offsets8 = []Position{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
)

// Offset returns the unit offset of direction d under connectivity c.
func (c Connectivity) Offset(d Direction) Position {
	return c.offsets()[d]
}

// Opposite returns (d + N/2) mod N.
func (c Connectivity) Opposite(d Direction) Direction {
	n := Direction(c.Directions())
	return (d + n/2) % n
}

// StepCost returns DiagonalCost for diagonal moves and OrthogonalCost otherwise.
func (c Connectivity) StepCost(d Direction) int {
	o := c.offsets()[d]
	if o.X != 0 && o.Y != 0 {
		return DiagonalCost
	}
	return OrthogonalCost
}

// Valid reports whether d is a direction of c.
func (c Connectivity) Valid(d Direction) bool {
	return d >= 0 && int(d) < c.Directions()
}

func (c Connectivity) offsets() []Position {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// BlockedThreshold is the minimum From2D cell value considered blocked.
	BlockedThreshold int
}

// Option customizes grid construction.
type Option func(*Options)

// DefaultOptions returns Options with Conn=Conn8 and BlockedThreshold=1.
func DefaultOptions() Options {
	return Options{
		Conn:             Conn8,
		BlockedThreshold: 1,
	}
}

// WithConnectivity sets the neighbor connectivity.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithBlockedThreshold sets the From2D value at or above which a cell is blocked.
func WithBlockedThreshold(t int) Option {
	return func(o *Options) {
		o.BlockedThreshold = t
	}
}

// Grid is an immutable occupancy map. blocked[y*Width+x] reports whether the
// cell at (x, y) is an obstacle.
type Grid struct {
	width, height int
	conn          Connectivity
	blocked       []bool
	offsets       []Position
}
