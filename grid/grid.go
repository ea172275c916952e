package grid

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// New constructs a width×height grid whose blocked cells are the members of
// blocked. A zero-value set means "no obstacles".
// Returns ErrEmptyGrid if either dimension is < 1 and ErrOutOfBounds if a
// blocked position lies outside the grid.
// Complexity: O(W×H + |blocked|).
func New(width, height int, blocked mapset.Set[Position], opts ...Option) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	cfg := applyOptions(opts)
	g := newGrid(width, height, cfg.Conn)

	var err error
	blocked.Each(func(p Position) {
		if err != nil {
			return
		}
		if !g.InBounds(p) {
			err = fmt.Errorf("%w: blocked cell %v in %dx%d grid", ErrOutOfBounds, p, width, height)
			return
		}
		g.blocked[g.Index(p)] = true
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// From2D constructs a grid from a non-empty, rectangular 2D slice indexed
// values[y][x]. Cells with value ≥ BlockedThreshold are blocked.
// Returns ErrEmptyGrid or ErrNonRectangular on malformed input.
// Complexity: O(W×H).
func From2D(values [][]int, opts ...Option) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cfg := applyOptions(opts)
	g := newGrid(w, h, cfg.Conn)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.blocked[y*w+x] = values[y][x] >= cfg.BlockedThreshold
		}
	}

	return g, nil
}

// Cell symbols accepted by FromRows and produced by Rows.
const (
	SymbolFree     = '.'
	SymbolObstacle = 'O'
	SymbolWall     = '#'
)

// FromRows constructs a grid from ASCII rows: '.' is free, 'O' and '#' are blocked.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadSymbol on malformed input.
func FromRows(rows []string, opts ...Option) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cfg := applyOptions(opts)
	g := newGrid(w, h, cfg.Conn)
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x := 0; x < w; x++ {
			switch row[x] {
			case SymbolFree:
			case SymbolObstacle, SymbolWall:
				g.blocked[y*w+x] = true
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadSymbol, row[x], x, y)
			}
		}
	}

	return g, nil
}

func applyOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func newGrid(w, h int, conn Connectivity) *Grid {
	return &Grid{
		width:   w,
		height:  h,
		conn:    conn,
		blocked: make([]bool, w*h),
		offsets: conn.offsets(),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns the number of cells, W×H.
func (g *Grid) Size() int { return g.width * g.height }

// Connectivity returns the grid's neighbor connectivity.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// Directions returns N, the number of movement directions (4 or 8).
func (g *Grid) Directions() int { return len(g.offsets) }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// IsBlocked reports whether the cell at p is an obstacle. Callers must check
// InBounds first; out-of-bounds positions report true.
// Complexity: O(1).
func (g *Grid) IsBlocked(p Position) bool {
	if !g.InBounds(p) {
		return true
	}
	return g.blocked[g.Index(p)]
}

// Passable reports whether p is in bounds and free.
func (g *Grid) Passable(p Position) bool {
	return g.InBounds(p) && !g.blocked[g.Index(p)]
}

// Offset returns the unit offset of direction d.
func (g *Grid) Offset(d Direction) Position {
	return g.offsets[d]
}

// Neighbor returns the position one step from p in direction d.
// The result may be out of bounds.
func (g *Grid) Neighbor(p Position, d Direction) Position {
	return p.Add(g.offsets[d])
}

// Opposite returns (d + N/2) mod N.
func (g *Grid) Opposite(d Direction) Direction {
	return g.conn.Opposite(d)
}

// IsDiagonal reports whether d moves along both axes.
func (g *Grid) IsDiagonal(d Direction) bool {
	o := g.offsets[d]
	return o.X != 0 && o.Y != 0
}

// StepCost returns the movement cost of one step in direction d:
// DiagonalCost for diagonal moves under Conn8, OrthogonalCost otherwise.
func (g *Grid) StepCost(d Direction) int {
	return g.conn.StepCost(d)
}

// DirectionTo returns the direction d with Neighbor(from, d) == to.
// ok is false when the two positions are not single-step neighbors.
func (g *Grid) DirectionTo(from, to Position) (d Direction, ok bool) {
	delta := Position{X: to.X - from.X, Y: to.Y - from.Y}
	for i, o := range g.offsets {
		if o == delta {
			return Direction(i), true
		}
	}
	return 0, false
}

// Index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Y*g.width + p.X
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{X: idx % g.width, Y: idx / g.width}
}

// BlockedCells returns the set of blocked positions.
func (g *Grid) BlockedCells() mapset.Set[Position] {
	set := mapset.New[Position]()
	for i, b := range g.blocked {
		if b {
			set.Put(g.Coordinate(i))
		}
	}
	return set
}

// Rows renders the grid as ASCII rows using SymbolFree and SymbolObstacle.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	buf := make([]byte, g.width)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.blocked[y*g.width+x] {
				buf[x] = SymbolObstacle
			} else {
				buf[x] = SymbolFree
			}
		}
		rows[y] = string(buf)
	}
	return rows
}
