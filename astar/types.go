package astar

import (
	"fmt"

	"github.com/katalvlaran/gridastar/grid"
)

// Options configures a search. Build it with DefaultOptions and functional
// Option values; invalid values are recorded and surfaced as
// ErrOptionViolation when the search starts.
type Options struct {
	// Heuristic estimates remaining cost. Default: Euclidean.
	Heuristic Heuristic

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit once
	// that many cells have been expanded. 0 disables the cap.
	MaxExpansions int

	// OnExpand is called for each cell right before its neighbors are scored.
	OnExpand func(p grid.Position, g int)

	// OnEnqueue is called whenever a cell is pushed or its priority improved.
	OnEnqueue func(p grid.Position, g, f int)

	// internal error recorded during option parsing
	err error
}

// Option configures search behavior via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with the Euclidean heuristic, no expansion
// cap and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Heuristic:     Euclidean,
		MaxExpansions: 0,
		OnExpand:      func(grid.Position, int) {},
		OnEnqueue:     func(grid.Position, int, int) {},
	}
}

// WithHeuristic selects the distance estimate. nil keeps the default.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithMaxExpansions caps the number of expanded cells.
//
//	n > 0: stop after n expansions with ErrExpansionLimit
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run for each expanded cell.
func WithOnExpand(fn func(p grid.Position, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEnqueue registers a callback run on every push or improve.
func WithOnEnqueue(fn func(p grid.Position, g, f int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// Result holds the outcome of one search:
//   - Found: the goal was reached. False means unreachable, with an empty Route.
//   - Route: forward directions from start to goal.
//   - Cost: accumulated movement cost, the goal's g when it was popped.
//   - Expanded: number of cells whose neighbors were scored.
//   - Stale: frontier entries discarded as superseded.
type Result struct {
	Found    bool
	Route    Route
	Cost     int
	Expanded int
	Stale    int
}
