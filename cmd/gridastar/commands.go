package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridastar/grid"
	"github.com/katalvlaran/gridastar/planner"
	"github.com/katalvlaran/gridastar/render"
)

// app holds state shared by all subcommands once the root pre-run has
// loaded configuration.
type app struct {
	configPath string
	logLevel   string
	color      string
	metrics    bool

	cfg      planner.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	colorOn  bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "gridastar",
		Short: "Plan routes on 2D occupancy grids with A*",
		Long: `gridastar finds minimum-cost routes on grids of free and blocked cells.
Moves cost 10 orthogonally and 14 diagonally; routes print as one direction
digit per step (0=E 1=SE 2=S 3=SW 4=W 5=NW 6=N 7=NE).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&a.color, "color", "", "colour output: auto, always or never")
	pf.BoolVar(&a.metrics, "metrics", false, "print search metrics after the run")

	root.AddCommand(
		newDemoCmd(a),
		newSolveCmd(a),
		newBatchCmd(a),
	)
	return root
}

// setup loads the config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := planner.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Output.LogLevel = a.logLevel
	}
	if a.color != "" {
		cfg.Output.Color = a.color
	}
	if a.metrics {
		cfg.Output.Metrics = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, _ := cfg.LogLevel()
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	a.registry = prometheus.NewRegistry()

	mode, _ := render.ParseColorMode(cfg.Output.Color)
	out, _ := cmd.OutOrStdout().(*os.File)
	a.colorOn = mode.Enabled(out)

	return nil
}

// newPlanner builds a planner over g with config-driven options.
func (a *app) newPlanner(g *grid.Grid) (*planner.Planner, error) {
	searchOpts, err := a.cfg.SearchOptions()
	if err != nil {
		return nil, err
	}
	opts := []planner.Option{
		planner.WithLogger(a.logger),
		planner.WithSearchOptions(searchOpts...),
	}
	if a.cfg.Output.Metrics {
		opts = append(opts, planner.WithMetrics(planner.NewMetrics(a.registry)))
	}
	return planner.New(g, opts...)
}

// finish prints metrics when enabled.
func (a *app) finish(cmd *cobra.Command) error {
	if !a.cfg.Output.Metrics {
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return planner.WriteMetrics(cmd.OutOrStdout(), a.registry)
}
