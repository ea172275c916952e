package astar

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the search.
//
// Every input validation failure satisfies errors.Is(err, ErrInvalidInput).
// An unreachable goal is not an error: Search returns Result.Found == false.
var (
	// ErrInvalidInput is the root of all input validation failures.
	ErrInvalidInput = errors.New("astar: invalid input")

	// ErrNilGrid indicates a nil *grid.Grid was supplied.
	ErrNilGrid = fmt.Errorf("%w: grid is nil", ErrInvalidInput)

	// ErrStartOutOfBounds indicates the start position lies outside the grid.
	ErrStartOutOfBounds = fmt.Errorf("%w: start out of bounds", ErrInvalidInput)

	// ErrGoalOutOfBounds indicates the goal position lies outside the grid.
	ErrGoalOutOfBounds = fmt.Errorf("%w: goal out of bounds", ErrInvalidInput)

	// ErrStartBlocked indicates the start cell is an obstacle.
	ErrStartBlocked = fmt.Errorf("%w: start cell is blocked", ErrInvalidInput)

	// ErrGoalBlocked indicates the goal cell is an obstacle.
	ErrGoalBlocked = fmt.Errorf("%w: goal cell is blocked", ErrInvalidInput)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit is returned when WithMaxExpansions stops the search
	// before the goal was reached or the frontier ran dry.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrUnknownHeuristic is returned by ParseHeuristic for an unknown name.
	ErrUnknownHeuristic = errors.New("astar: unknown heuristic")

	// ErrBadRoute indicates a route string or step sequence is malformed or
	// does not fit the grid it is checked against.
	ErrBadRoute = errors.New("astar: bad route")

	// ErrInternalInconsistency signals a broken frontier or tracker invariant.
	// It indicates a defect, not a recoverable condition.
	ErrInternalInconsistency = errors.New("astar: internal inconsistency")
)
