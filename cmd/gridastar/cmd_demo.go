package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridastar/grid"
	"github.com/katalvlaran/gridastar/planner"
	"github.com/katalvlaran/gridastar/render"
	"github.com/katalvlaran/gridastar/scenario"
)

// mapFlags are the map and search overrides shared by demo and batch.
type mapFlags struct {
	width, height int
	conn          int
	layout        int
	seed          int64
	heuristic     string
	maxExpansions int
}

func (f *mapFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.width, "width", 0, "map width (default from config)")
	fs.IntVar(&f.height, "height", 0, "map height (default from config)")
	fs.IntVar(&f.conn, "conn", 0, "connectivity: 4 or 8")
	fs.IntVar(&f.layout, "layout", -1, "start/finish layout 0..7; -1 draws one")
	fs.Int64Var(&f.seed, "seed", 0, "random seed; 0 seeds from the clock")
	fs.StringVar(&f.heuristic, "heuristic", "", "euclidean, octile, manhattan, chebyshev or zero")
	fs.IntVar(&f.maxExpansions, "max-expansions", 0, "abort a search after this many expansions; 0 is unlimited")
}

// apply copies explicitly set flags onto cfg and revalidates it.
func (f *mapFlags) apply(cmd *cobra.Command, cfg *planner.Config) error {
	fs := cmd.Flags()
	if fs.Changed("width") {
		cfg.Map.Width = f.width
	}
	if fs.Changed("height") {
		cfg.Map.Height = f.height
	}
	if fs.Changed("conn") {
		cfg.Map.Connectivity = f.conn
	}
	if fs.Changed("layout") {
		cfg.Map.Layout = f.layout
	}
	if fs.Changed("seed") {
		cfg.Map.Seed = f.seed
	}
	if fs.Changed("heuristic") {
		cfg.Search.Heuristic = f.heuristic
	}
	if fs.Changed("max-expansions") {
		cfg.Search.MaxExpansions = f.maxExpansions
	}
	return cfg.Validate()
}

func newDemoCmd(a *app) *cobra.Command {
	var flags mapFlags
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Route across the classic '+' obstacle map",
		Long: `demo builds a '+' shaped obstacle in the middle of the map, picks one of
eight start/finish layouts that force a detour around it, and prints the
route, its timing and the map with the route drawn on it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := flags.apply(cmd, &a.cfg); err != nil {
				return err
			}
			return a.runDemo(cmd)
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *app) runDemo(cmd *cobra.Command) error {
	s, err := scenario.Demo(a.cfg.Map.Width, a.cfg.Map.Height, a.cfg.ScenarioOptions()...)
	if err != nil {
		return err
	}
	p, err := a.newPlanner(s.Grid)
	if err != nil {
		return err
	}
	out, err := p.Plan(cmd.Context(), planner.JobFor(s))
	if err != nil {
		return err
	}

	a.report(cmd.OutOrStdout(), s.Grid, out)
	if out.Err != nil {
		return out.Err
	}
	return a.finish(cmd)
}

// report prints one outcome the way the classic demo did: map size,
// endpoints, timing, the route digits and the map with the route drawn.
func (a *app) report(w io.Writer, g *grid.Grid, out planner.Outcome) {
	job := out.Job
	fmt.Fprintf(w, "Map Size (X,Y): %d,%d\n", g.Width(), g.Height())
	fmt.Fprintf(w, "Start: %d,%d\n", job.Start.X, job.Start.Y)
	fmt.Fprintf(w, "Finish: %d,%d\n", job.Goal.X, job.Goal.Y)
	if out.Err != nil {
		fmt.Fprintf(w, "Search failed: %v\n", out.Err)
		return
	}
	route := out.Result.Route
	if route.Empty() {
		fmt.Fprintln(w, "An empty route generated!")
	}
	fmt.Fprintf(w, "Time to calculate the route (ms): %.3f\n", float64(out.Elapsed.Microseconds())/1000)
	fmt.Fprintf(w, "Cost: %d  Steps: %d  Expanded: %d\n", out.Result.Cost, route.Len(), out.Result.Expanded)
	fmt.Fprintln(w, "Route:")
	fmt.Fprintln(w, route.String())
	fmt.Fprintln(w)

	if a.cfg.Output.ShowMap && !route.Empty() {
		_ = render.Fprint(w, g, job.Start, route, render.WithColor(a.colorOn))
	}
}
