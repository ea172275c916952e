// SPDX-License-Identifier: MIT
// Package: gridastar/scenario
//
// errors.go - sentinel errors for the scenario package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the call site, never in the sentinel.
//   • Grid construction errors are wrapped, so errors.Is(err, grid.ErrX) works too.

package scenario

import "errors"

// ErrMapTooSmall indicates a width or height below MinSize for map and
// layout constructors.
var ErrMapTooSmall = errors.New("scenario: map too small")

// ErrLayoutIndex indicates a layout index outside [0, LayoutCount).
var ErrLayoutIndex = errors.New("scenario: layout index out of range")

// ErrNeedRandSource indicates a stochastic helper was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("scenario: rng is required")

// ErrNoRoute indicates no two free cells share a connected component, so no
// reachable endpoint pair exists.
var ErrNoRoute = errors.New("scenario: no connected pair of free cells")

// ErrBadScenario indicates a scenario document that cannot be turned into a
// valid grid and endpoint pair.
var ErrBadScenario = errors.New("scenario: invalid scenario")
