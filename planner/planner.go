// Package planner runs route searches for an application: it times each
// search, logs the outcome with log/slog, records Prometheus metrics and fans
// independent searches out over a shared grid.
//
// # Concurrency
//
// A Planner is safe for concurrent use. The grid is shared read-only; each
// in-flight search borrows its own astar.Searcher from a pool, so a single
// search stays single-threaded while a batch runs several at once.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/grid"
	"github.com/katalvlaran/gridastar/scenario"
)

// ErrNilGrid is returned by New for a nil grid.
var ErrNilGrid = errors.New("planner: grid is nil")

// Job is one start/goal query.
type Job struct {
	Name  string
	Start grid.Position
	Goal  grid.Position
}

// Outcome is the result of one Job.
type Outcome struct {
	Job     Job
	Result  astar.Result
	Elapsed time.Duration
	// Err holds a per-job failure such as invalid endpoints.
	Err error
}

// Label classifies the outcome for logs and metrics.
func (o Outcome) Label() string {
	switch {
	case o.Err == nil && o.Result.Found:
		return OutcomeFound
	case o.Err == nil:
		return OutcomeUnreachable
	case errors.Is(o.Err, astar.ErrInvalidInput):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}

// Planner plans routes on one grid.
type Planner struct {
	g         *grid.Grid
	logger    *slog.Logger
	metrics   *Metrics
	searchOpt []astar.Option
	searchers sync.Pool
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMetrics enables metric recording. Default: none.
func WithMetrics(m *Metrics) Option {
	return func(p *Planner) { p.metrics = m }
}

// WithSearchOptions sets the astar options applied to every search.
func WithSearchOptions(opts ...astar.Option) Option {
	return func(p *Planner) { p.searchOpt = append(p.searchOpt, opts...) }
}

// New returns a Planner over g.
func New(g *grid.Grid, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	p := &Planner{g: g, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	p.searchers.New = func() any { return astar.NewSearcher(g) }

	return p, nil
}

// Grid returns the planner's grid.
func (p *Planner) Grid() *grid.Grid {
	return p.g
}

// Plan runs one search. Invalid endpoints and an unreachable goal are
// reported in the Outcome; the returned error is non-nil only for a
// cancelled context or an internal failure of the search engine.
func (p *Planner) Plan(ctx context.Context, job Job) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{Job: job}, err
	}

	s := p.searchers.Get().(*astar.Searcher)
	start := time.Now()
	res, err := s.Search(job.Start, job.Goal, p.searchOpt...)
	elapsed := time.Since(start)
	p.searchers.Put(s)

	out := Outcome{Job: job, Result: res, Elapsed: elapsed, Err: err}
	label := out.Label()
	p.metrics.observe(label, out)
	p.log(ctx, label, out)

	if errors.Is(err, astar.ErrInternalInconsistency) {
		return out, fmt.Errorf("planner: job %q: %w", job.Name, err)
	}
	return out, nil
}

func (p *Planner) log(ctx context.Context, label string, o Outcome) {
	attrs := []slog.Attr{
		slog.String("job", o.Job.Name),
		slog.String("start", o.Job.Start.String()),
		slog.String("goal", o.Job.Goal.String()),
		slog.String("outcome", label),
	}
	switch label {
	case OutcomeFound, OutcomeUnreachable:
		attrs = append(attrs,
			slog.Int("cost", o.Result.Cost),
			slog.Int("steps", o.Result.Route.Len()),
			slog.Int("expanded", o.Result.Expanded),
			slog.Int("stale", o.Result.Stale),
			slog.Duration("elapsed", o.Elapsed),
		)
		p.logger.LogAttrs(ctx, slog.LevelInfo, "route search finished", attrs...)
	case OutcomeInvalid:
		attrs = append(attrs, slog.String("error", o.Err.Error()))
		p.logger.LogAttrs(ctx, slog.LevelWarn, "route search rejected", attrs...)
	default:
		attrs = append(attrs, slog.String("error", o.Err.Error()))
		p.logger.LogAttrs(ctx, slog.LevelError, "route search failed", attrs...)
	}
}

// RunBatch plans every job with at most limit searches in flight and returns
// the outcomes in job order. A cancelled context stops scheduling new jobs
// and is returned; an internal search failure aborts the batch.
func (p *Planner) RunBatch(ctx context.Context, jobs []Job, limit int) ([]Outcome, error) {
	if limit < 1 {
		limit = 1
	}
	outcomes := make([]Outcome, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			out, err := p.Plan(gctx, job)
			outcomes[i] = out
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	if err := ctx.Err(); err != nil {
		return outcomes, err
	}

	p.logger.LogAttrs(ctx, slog.LevelDebug, "batch finished",
		slog.Int("jobs", len(jobs)),
		slog.Int("limit", limit),
	)
	return outcomes, nil
}

// JobFor converts a scenario into a Job.
func JobFor(s *scenario.Scenario) Job {
	return Job{Name: s.Name, Start: s.Start, Goal: s.Goal}
}

// Summary aggregates a batch.
type Summary struct {
	Jobs, Found, Unreachable, Invalid, Failed int
	TotalCost, TotalExpanded                   int
	Elapsed                                    time.Duration
}

// Summarize counts outcomes by label and sums costs and timings of the
// searches that ran.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	s.Jobs = len(outcomes)
	for _, o := range outcomes {
		switch o.Label() {
		case OutcomeFound:
			s.Found++
			s.TotalCost += o.Result.Cost
		case OutcomeUnreachable:
			s.Unreachable++
		case OutcomeInvalid:
			s.Invalid++
		default:
			s.Failed++
		}
		s.TotalExpanded += o.Result.Expanded
		s.Elapsed += o.Elapsed
	}
	return s
}
