package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/grid"
	"github.com/katalvlaran/gridastar/planner"
)

var wallRows = []string{
	".....",
	"..O..",
	"..O..",
	"..O..",
	"..O..",
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(append([]string{"--color", "never"}, args...))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDemo(t *testing.T) {
	out, _, err := run(t, "demo", "--width", "20", "--height", "20", "--layout", "2", "--seed", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Map Size (X,Y): 20,20")
	assert.Contains(t, out, "Start: ")
	assert.Contains(t, out, "Finish: ")
	assert.Contains(t, out, "Time to calculate the route (ms): ")
	assert.Contains(t, out, "Route:")
	assert.NotContains(t, out, "An empty route generated!")
	// The rendered map has one row per grid row after the route block.
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 20)
	assert.Contains(t, out, "S")
	assert.Contains(t, out, "F")
}

func TestDemo_SearchFailure(t *testing.T) {
	out, _, err := run(t, "demo", "--width", "20", "--height", "20", "--layout", "2", "--max-expansions", "1")
	require.ErrorIs(t, err, astar.ErrExpansionLimit)
	assert.Contains(t, out, "Search failed")
}

func TestDemo_MalformedEnv(t *testing.T) {
	t.Setenv("GRIDASTAR_WIDTH", "abc")
	_, _, err := run(t, "demo")
	assert.ErrorIs(t, err, planner.ErrInvalidConfig)
}

func TestSolve_ScenarioFile(t *testing.T) {
	path := writeFile(t, "wall.yaml", `
name: wall
start: {x: 0, y: 2}
goal: {x: 4, y: 2}
rows:
  - "....."
  - "..O.."
  - "..O.."
  - "..O.."
  - "..O.."
`)
	out, _, err := run(t, "solve", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Start: 0,2")
	assert.Contains(t, out, "Finish: 4,2")
	assert.Contains(t, out, "Cost: 56")
	assert.Contains(t, out, "\n7711\n")
	assert.Contains(t, out, "S.O.F")
}

func TestSolve_ASCIIMap(t *testing.T) {
	path := writeFile(t, "wall.txt", strings.Join(wallRows, "\n")+"\n")

	out, _, err := run(t, "solve", "--map", path, "--start", "0,2", "--goal", "4,2", "--conn", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Cost: 80  Steps: 8")

	saved := filepath.Join(t.TempDir(), "saved.yaml")
	_, _, err = run(t, "solve", "--map", path, "--start", "0,2", "--goal", "4,2", "--heuristic", "octile", "--save", saved)
	require.NoError(t, err)
	data, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Contains(t, string(data), "heuristic: octile")
}

func TestSolve_Unreachable(t *testing.T) {
	path := writeFile(t, "box.txt", ".....\n.OOO.\n.O.O.\n.OOO.\n.....\n")
	out, _, err := run(t, "solve", "--map", path, "--start", "0,0", "--goal", "2,2")
	require.NoError(t, err)
	assert.Contains(t, out, "An empty route generated!")
}

func TestSolve_Errors(t *testing.T) {
	path := writeFile(t, "wall.txt", strings.Join(wallRows, "\n"))
	cases := []struct {
		name string
		args []string
	}{
		{"NoInput", []string{"solve"}},
		{"BothInputs", []string{"solve", "--file", "a.yaml", "--map", path}},
		{"BadStart", []string{"solve", "--map", path, "--start", "0", "--goal", "4,2"}},
		{"BlockedGoal", []string{"solve", "--map", path, "--start", "0,0", "--goal", "2,2"}},
		{"BadConn", []string{"solve", "--map", path, "--start", "0,0", "--goal", "4,2", "--conn", "6"}},
		{"BadHeuristic", []string{"solve", "--map", path, "--start", "0,0", "--goal", "4,2", "--heuristic", "guess"}},
		{"MissingFile", []string{"solve", "--file", filepath.Join(t.TempDir(), "absent.yaml")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestBatch_WithMetrics(t *testing.T) {
	out, stderr, err := run(t, "--metrics", "--log-level", "debug",
		"batch", "--width", "20", "--height", "20", "--seed", "3", "--random", "3", "-j", "2")
	require.NoError(t, err)

	for _, name := range []string{"corner-down", "centre-up", "horizontal-left", "random-0", "random-2"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "11 jobs: 11 found, 0 unreachable, 0 invalid, 0 failed")
	assert.Contains(t, out, `gridastar_search_searches_total{outcome="found"} 11`)
	assert.Contains(t, stderr, "route search finished")
	assert.Contains(t, stderr, "batch finished")
}

func TestRootFlagErrors(t *testing.T) {
	_, _, err := run(t, "--log-level", "loud", "demo")
	assert.Error(t, err)

	_, _, err = run(t, "demo", "--conn", "6")
	assert.Error(t, err)

	_, _, err = run(t, "demo", "--width", "2")
	assert.Error(t, err)

	cfg := writeFile(t, "bad.yaml", "map: [\n")
	_, _, err = run(t, "--config", cfg, "demo")
	assert.Error(t, err)
}

func TestParsePosition(t *testing.T) {
	p, err := parsePosition(" 3, 14")
	require.NoError(t, err)
	assert.Equal(t, grid.Pos(3, 14), p)

	for _, bad := range []string{"", "3", "a,1", "1,b"} {
		_, err := parsePosition(bad)
		assert.Error(t, err, bad)
	}
}
