// SPDX-License-Identifier: MIT
// Package: gridastar/scenario
//
// random.go - random endpoint pairs that are guaranteed reachable.
//
// Endpoints are drawn from a single connected component: first a component
// is chosen with probability proportional to its size among components of
// at least two cells, then two distinct cells of it.

package scenario

import (
	"github.com/katalvlaran/gridastar/grid"
)

// RandomEndpoints draws a start and a distinct goal from the same connected
// component of g, so a route between them always exists.
// Requires WithSeed or WithRand (ErrNeedRandSource). Returns ErrNoRoute when
// every component is a single cell.
// Complexity: O(W·H·d).
func RandomEndpoints(g *grid.Grid, opts ...Option) (Endpoints, error) {
	cfg := newConfig(opts)
	if cfg.rng == nil {
		return Endpoints{}, ErrNeedRandSource
	}

	comps := g.ConnectedComponents()
	total := 0
	for _, c := range comps {
		if len(c) >= 2 {
			total += len(c)
		}
	}
	if total == 0 {
		return Endpoints{}, ErrNoRoute
	}

	// Weighted pick: walk the eligible components until the draw falls inside one.
	k := cfg.rng.Intn(total)
	var chosen []int
	for _, c := range comps {
		if len(c) < 2 {
			continue
		}
		if k < len(c) {
			chosen = c
			break
		}
		k -= len(c)
	}

	a := cfg.rng.Intn(len(chosen))
	b := cfg.rng.Intn(len(chosen) - 1)
	if b >= a {
		b++
	}

	return Endpoints{Start: g.Coordinate(chosen[a]), Goal: g.Coordinate(chosen[b])}, nil
}
