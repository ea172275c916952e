package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridastar/grid"
	"github.com/katalvlaran/gridastar/planner"
	"github.com/katalvlaran/gridastar/scenario"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		file      string
		mapFile   string
		start     string
		goal      string
		heuristic string
		conn      int
		save      string
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a scenario file or an ASCII map",
		Long: `solve reads either a YAML scenario (--file) or a plain ASCII map (--map,
one row per line, '.' free, 'O' or '#' blocked) with --start and --goal.`,
		Example: `  gridastar solve --file wall.yaml
  gridastar solve --map maze.txt --start 0,0 --goal 19,9 --heuristic octile`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var s *scenario.Scenario
			var err error
			switch {
			case file != "" && mapFile != "":
				return fmt.Errorf("use either --file or --map, not both")
			case file != "":
				s, err = scenario.Load(file)
			case mapFile != "":
				s, err = loadASCII(mapFile, start, goal, conn)
			default:
				return fmt.Errorf("one of --file or --map is required")
			}
			if err != nil {
				return err
			}

			switch {
			case cmd.Flags().Changed("heuristic"):
				a.cfg.Search.Heuristic = heuristic
			case s.Heuristic != "":
				a.cfg.Search.Heuristic = s.Heuristic
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			if save != "" {
				s.Heuristic = a.cfg.Search.Heuristic
				if err := s.Save(save); err != nil {
					return err
				}
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
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&file, "file", "f", "", "YAML scenario file")
	fs.StringVar(&mapFile, "map", "", "ASCII map file")
	fs.StringVar(&start, "start", "", "start cell as x,y (with --map)")
	fs.StringVar(&goal, "goal", "", "goal cell as x,y (with --map)")
	fs.IntVar(&conn, "conn", 8, "connectivity for --map: 4 or 8")
	fs.StringVar(&heuristic, "heuristic", "", "override the heuristic")
	fs.StringVar(&save, "save", "", "write the scenario as YAML to this path")
	return cmd
}

// loadASCII reads a map file and pairs it with endpoints given as "x,y".
func loadASCII(path, start, goal string, conn int) (*scenario.Scenario, error) {
	c, err := grid.ParseConnectivity(conn)
	if err != nil {
		return nil, err
	}
	from, err := parsePosition(start)
	if err != nil {
		return nil, fmt.Errorf("--start: %w", err)
	}
	to, err := parsePosition(goal)
	if err != nil {
		return nil, fmt.Errorf("--goal: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimRight(sc.Text(), " \t\r"); line != "" {
			rows = append(rows, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	g, err := grid.FromRows(rows, grid.WithConnectivity(c))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &scenario.Scenario{
		Name:      path,
		Grid:      g,
		Endpoints: scenario.Endpoints{Start: from, Goal: to},
	}, nil
}

// parsePosition parses "x,y".
func parsePosition(s string) (grid.Position, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Position{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Position{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Position{}, fmt.Errorf("bad y in %q: %w", s, err)
	}
	return grid.Pos(x, y), nil
}
