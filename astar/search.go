package astar

import (
	"fmt"

	"github.com/katalvlaran/gridastar/grid"
)

// Searcher is a reusable search context: a read-only Grid plus the scratch
// structures (frontier, visited set, direction map) owned by one search at a
// time. Scratch is fully reset at the start of every call, so sequential
// searches never observe each other's state.
//
// A Searcher is not safe for concurrent use. The Grid is; give each
// goroutine its own Searcher over the same Grid.
type Searcher struct {
	g        *grid.Grid
	frontier frontier
	tracker  tracker
}

// NewSearcher returns a Searcher over g. Scratch buffers are sized lazily on
// the first search and reused afterwards.
func NewSearcher(g *grid.Grid) *Searcher {
	return &Searcher{g: g}
}

// Grid returns the grid this Searcher reads.
func (s *Searcher) Grid() *grid.Grid {
	return s.g
}

// Search finds a minimum-cost route from start to goal on g using a fresh
// Searcher. See (*Searcher).Search.
func Search(g *grid.Grid, start, goal grid.Position, opts ...Option) (Result, error) {
	return NewSearcher(g).Search(start, goal, opts...)
}

// Search runs A* from start to goal.
//
// Preconditions and validation (in order):
//  1. Options are valid (ErrOptionViolation).
//  2. The grid is non-nil (ErrNilGrid).
//  3. start and goal are in bounds (ErrStartOutOfBounds, ErrGoalOutOfBounds).
//  4. start and goal are free (ErrStartBlocked, ErrGoalBlocked).
//
// Outcomes:
//   - start == goal: Found, empty route, cost 0, nothing expanded.
//   - goal reached: Found, the forward route and its cost.
//   - frontier exhausted: not Found, empty route, nil error.
//
// Complexity:
//   - Time:  O(W·H·d·log(W·H)) worst case, d = 4 or 8.
//   - Space: O(W·H) scratch plus O(W·H·d) heap entries under lazy invalidation.
func (s *Searcher) Search(start, goal grid.Position, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate inputs before touching any scratch state.
	if err := s.validate(start, goal); err != nil {
		return Result{}, err
	}
	conn := s.g.Connectivity()

	// 3) Trivial route.
	if start == goal {
		return Result{Found: true, Route: Route{Conn: conn}}, nil
	}

	// 4) Reset scratch and run.
	n := s.g.Size()
	s.frontier.reset(n)
	s.tracker.reset(n)

	r := &runner{
		s:     s,
		g:     s.g,
		cfg:   cfg,
		start: start,
		goal:  goal,
	}

	return r.run()
}

func (s *Searcher) validate(start, goal grid.Position) error {
	if s == nil || s.g == nil {
		return ErrNilGrid
	}
	if !s.g.InBounds(start) {
		return fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if !s.g.InBounds(goal) {
		return fmt.Errorf("%w: %v", ErrGoalOutOfBounds, goal)
	}
	if s.g.IsBlocked(start) {
		return fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}
	if s.g.IsBlocked(goal) {
		return fmt.Errorf("%w: %v", ErrGoalBlocked, goal)
	}

	return nil
}

// runner holds the per-call state of one search over a Searcher's scratch.
type runner struct {
	s           *Searcher
	g           *grid.Grid
	cfg         Options
	start, goal grid.Position
	expanded    int
}

// run is the Running state: pop, test for goal, expand, repeat.
func (r *runner) run() (Result, error) {
	fr, tr := &r.s.frontier, &r.s.tracker
	goalCell := r.g.Index(r.goal)

	// Seed with the start cell at g=0.
	startCell := r.g.Index(r.start)
	if err := r.enqueue(startCell, r.start, 0, r.cfg.Heuristic(r.start, r.goal), false); err != nil {
		return Result{}, err
	}

	for {
		e, ok := fr.popBest()
		if !ok {
			// Exhausted: no route exists.
			return Result{Expanded: r.expanded, Stale: fr.stale, Route: Route{Conn: r.g.Connectivity()}}, nil
		}
		if tr.isVisited(e.cell) {
			return Result{}, fmt.Errorf("%w: live entry for visited cell %v", ErrInternalInconsistency, r.g.Coordinate(e.cell))
		}

		if e.cell == goalCell {
			route, err := r.reconstruct()
			if err != nil {
				return Result{}, err
			}
			return Result{
				Found:    true,
				Route:    route,
				Cost:     e.g,
				Expanded: r.expanded,
				Stale:    fr.stale,
			}, nil
		}

		if r.cfg.MaxExpansions > 0 && r.expanded >= r.cfg.MaxExpansions {
			return Result{Expanded: r.expanded, Stale: fr.stale, Route: Route{Conn: r.g.Connectivity()}}, fmt.Errorf("%w: %d", ErrExpansionLimit, r.cfg.MaxExpansions)
		}

		tr.markVisited(e.cell)
		if err := r.expand(e); err != nil {
			return Result{}, err
		}
	}
}

// expand scores every passable, unvisited neighbor of e and either pushes
// it, improves its frontier entry, or discards the candidate.
func (r *runner) expand(e entry) error {
	fr, tr := &r.s.frontier, &r.s.tracker
	p := r.g.Coordinate(e.cell)
	r.expanded++
	r.cfg.OnExpand(p, e.g)

	for d := grid.Direction(0); int(d) < r.g.Directions(); d++ {
		np := r.g.Neighbor(p, d)
		if !r.g.InBounds(np) || r.g.IsBlocked(np) {
			continue
		}
		nc := r.g.Index(np)
		if tr.isVisited(nc) {
			continue
		}

		g := e.g + r.g.StepCost(d)
		f := g + r.cfg.Heuristic(np, r.goal)

		switch {
		case !fr.isOpen(nc):
			if err := r.enqueue(nc, np, g, f, false); err != nil {
				return err
			}
			tr.setBackDirection(nc, r.g.Opposite(d))
		case f < fr.bestPriority(nc):
			if err := r.enqueue(nc, np, g, f, true); err != nil {
				return err
			}
			tr.setBackDirection(nc, r.g.Opposite(d))
		default:
			// A better or equal path to nc is already queued.
		}
	}

	return nil
}

func (r *runner) enqueue(cell int, p grid.Position, g, f int, improve bool) error {
	var err error
	if improve {
		err = r.s.frontier.improve(cell, g, f)
	} else {
		err = r.s.frontier.push(cell, g, f)
	}
	if err != nil {
		return err
	}
	r.cfg.OnEnqueue(p, g, f)

	return nil
}
