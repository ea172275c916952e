package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridastar/planner"
	"github.com/katalvlaran/gridastar/scenario"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		flags       mapFlags
		concurrency int
		pairs       int
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Route all eight '+' map layouts plus random pairs concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("concurrency") {
				a.cfg.Batch.Concurrency = concurrency
			}
			if cmd.Flags().Changed("random") {
				a.cfg.Batch.RandomPairs = pairs
			}
			if err := flags.apply(cmd, &a.cfg); err != nil {
				return err
			}
			return a.runBatch(cmd)
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVarP(&concurrency, "concurrency", "j", 0, "searches in flight (default from config)")
	cmd.Flags().IntVar(&pairs, "random", 0, "extra random start/goal pairs on the same map")
	return cmd
}

func (a *app) runBatch(cmd *cobra.Command) error {
	cfg := a.cfg
	seed := cfg.Map.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := append(cfg.ScenarioOptions(), scenario.WithRand(rand.New(rand.NewSource(seed))))

	scenarios, err := scenario.Layouts(cfg.Map.Width, cfg.Map.Height, opts...)
	if err != nil {
		return err
	}
	g := scenarios[0].Grid

	jobs := make([]planner.Job, 0, len(scenarios)+cfg.Batch.RandomPairs)
	for _, s := range scenarios {
		jobs = append(jobs, planner.JobFor(s))
	}
	for i := range cfg.Batch.RandomPairs {
		ep, err := scenario.RandomEndpoints(g, opts...)
		if err != nil {
			return err
		}
		jobs = append(jobs, planner.Job{Name: fmt.Sprintf("random-%d", i), Start: ep.Start, Goal: ep.Goal})
	}

	p, err := a.newPlanner(g)
	if err != nil {
		return err
	}
	outcomes, err := p.RunBatch(cmd.Context(), jobs, cfg.Batch.Concurrency)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Map Size (X,Y): %d,%d  seed %d\n\n", g.Width(), g.Height(), seed)
	fmt.Fprintf(w, "%-18s %-12s %-17s %6s %6s %8s %10s\n",
		"NAME", "OUTCOME", "ROUTE", "COST", "STEPS", "EXPANDED", "MS")
	for _, o := range outcomes {
		fmt.Fprintf(w, "%-18s %-12s %-17s %6d %6d %8d %10.3f\n",
			o.Job.Name, o.Label(),
			fmt.Sprintf("%s>%s", o.Job.Start, o.Job.Goal),
			o.Result.Cost, o.Result.Route.Len(), o.Result.Expanded,
			float64(o.Elapsed.Microseconds())/1000)
	}

	sum := planner.Summarize(outcomes)
	fmt.Fprintf(w, "\n%d jobs: %d found, %d unreachable, %d invalid, %d failed; %d cells expanded in %s\n",
		sum.Jobs, sum.Found, sum.Unreachable, sum.Invalid, sum.Failed, sum.TotalExpanded, sum.Elapsed)
	return a.finish(cmd)
}
