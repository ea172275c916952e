// SPDX-License-Identifier: MIT
// Package: gridastar/scenario

// Package scenario builds search problems: obstacle maps and start/finish
// pairs ready to hand to astar.Search.
//
// What it provides:
//   - PlusMap / PlusObstacles: the classic '+' shaped obstacle in the middle
//     of a W×H map (default 60×60).
//   - Layout / RandomLayout: eight canonical start/finish pairs that force a
//     route around the '+'. Draws are reproducible with WithSeed.
//   - RandomEndpoints: a start and goal drawn from one connected component,
//     so a route is guaranteed to exist.
//   - Parse / Load / Save: YAML scenario documents with ASCII rows.
//
// Determinism:
//   - Nothing here uses a global RNG. Stochastic helpers fail with
//     ErrNeedRandSource unless WithSeed or WithRand is supplied.
//
// Errors:
//   - ErrMapTooSmall, ErrLayoutIndex, ErrNeedRandSource, ErrNoRoute,
//     ErrBadScenario. Grid and heuristic errors are wrapped, not replaced.
package scenario
