// SPDX-License-Identifier: MIT
// Package: gridastar/scenario
//
// layout.go - the eight canonical start/finish layouts.
//
// Layouts pair opposite sides of the map so every route must get around the
// '+' obstacle: two corner diagonals, two crossings of the centre, two
// vertical and two horizontal crossings. Each one stays clear of the '+'
// bars for any map of at least MinSize×MinSize.

package scenario

import (
	"fmt"

	"github.com/katalvlaran/gridastar/grid"
)

// LayoutCount is the number of canonical layouts.
const LayoutCount = 8

// Endpoints is a start/finish pair.
type Endpoints struct {
	Start grid.Position `yaml:"start"`
	Goal  grid.Position `yaml:"goal"`
}

var layoutNames = [LayoutCount]string{
	"corner-down",
	"corner-up",
	"centre-down",
	"centre-up",
	"vertical-down",
	"vertical-up",
	"horizontal-right",
	"horizontal-left",
}

// LayoutName returns the short name of layout i, or "" when out of range.
func LayoutName(i int) string {
	if i < 0 || i >= LayoutCount {
		return ""
	}
	return layoutNames[i]
}

// Layout returns the endpoints of canonical layout i on a W×H map.
// Returns ErrLayoutIndex or ErrMapTooSmall.
func Layout(i, width, height int) (Endpoints, error) {
	if i < 0 || i >= LayoutCount {
		return Endpoints{}, fmt.Errorf("%w: %d", ErrLayoutIndex, i)
	}
	if width < MinSize || height < MinSize {
		return Endpoints{}, fmt.Errorf("%w: %dx%d", ErrMapTooSmall, width, height)
	}

	w, h := width, height
	cx, cy := w/2, h/2
	switch i {
	case 0:
		return Endpoints{grid.Pos(0, 0), grid.Pos(w-1, h-1)}, nil
	case 1:
		return Endpoints{grid.Pos(0, h-1), grid.Pos(w-1, 0)}, nil
	case 2:
		return Endpoints{grid.Pos(cx-1, cy-1), grid.Pos(cx+1, cy+1)}, nil
	case 3:
		return Endpoints{grid.Pos(cx-1, cy+1), grid.Pos(cx+1, cy-1)}, nil
	case 4:
		return Endpoints{grid.Pos(cx-1, 0), grid.Pos(cx+1, h-1)}, nil
	case 5:
		return Endpoints{grid.Pos(cx+1, h-1), grid.Pos(cx-1, 0)}, nil
	case 6:
		return Endpoints{grid.Pos(0, cy-1), grid.Pos(w-1, cy+1)}, nil
	default:
		return Endpoints{grid.Pos(w-1, cy+1), grid.Pos(0, cy-1)}, nil
	}
}

// RandomLayout draws a layout index with the configured RNG unless
// WithLayout pins one, and returns it with its endpoints.
// Returns ErrNeedRandSource when neither is set.
func RandomLayout(width, height int, opts ...Option) (int, Endpoints, error) {
	cfg := newConfig(opts)
	i := cfg.layout
	if i < 0 {
		if cfg.rng == nil {
			return 0, Endpoints{}, ErrNeedRandSource
		}
		i = cfg.rng.Intn(LayoutCount)
	}
	ep, err := Layout(i, width, height)

	return i, ep, err
}
