// SPDX-License-Identifier: MIT
// Package: gridastar/scenario
//
// plus.go - the '+' shaped obstacle map.
//
// Geometry for a W×H map (integer division throughout):
//   • horizontal bar on row H/2, columns [W/8, 7·(W/8))
//   • vertical bar on column W/2, rows [H/8, 7·(H/8))
// Maps narrower than 8 cells in a dimension get no bar in that dimension.

package scenario

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridastar/grid"
)

// Default demo map dimensions.
const (
	DefaultWidth  = 60
	DefaultHeight = 60
)

// MinSize is the smallest width and height accepted by PlusMap and Layout;
// every layout keeps its endpoints in bounds from this size up.
const MinSize = 3

// PlusObstacles returns the cells of the '+' pattern for a W×H map.
// Complexity: O(W + H).
func PlusObstacles(width, height int) mapset.Set[grid.Position] {
	cells := mapset.New[grid.Position]()

	xn := width / 8
	for x := xn; x < xn*7; x++ {
		cells.Put(grid.Pos(x, height/2))
	}
	yn := height / 8
	for y := yn; y < yn*7; y++ {
		cells.Put(grid.Pos(width/2, y))
	}

	return cells
}

// PlusMap builds a W×H grid with the '+' obstacle pattern.
// Only WithConnectivity affects the result.
func PlusMap(width, height int, opts ...Option) (*grid.Grid, error) {
	if width < MinSize || height < MinSize {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrMapTooSmall, width, height, MinSize, MinSize)
	}
	cfg := newConfig(opts)

	return grid.New(width, height, PlusObstacles(width, height), grid.WithConnectivity(cfg.conn))
}
