package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/grid"
)

func TestHeuristics(t *testing.T) {
	origin := grid.Pos(0, 0)
	cases := []struct {
		name string
		h    astar.Heuristic
		to   grid.Position
		want int
	}{
		{"EuclideanPythagorean", astar.Euclidean, grid.Pos(3, 4), 50},
		{"EuclideanTruncatesDiagonal", astar.Euclidean, grid.Pos(1, 1), 10},
		{"EuclideanFourByFour", astar.Euclidean, grid.Pos(4, 4), 50},
		{"EuclideanNegative", astar.Euclidean, grid.Pos(-6, -8), 100},
		{"Manhattan", astar.Manhattan, grid.Pos(3, -4), 70},
		{"Chebyshev", astar.Chebyshev, grid.Pos(3, -4), 40},
		{"Octile", astar.Octile, grid.Pos(4, 4), 56},
		{"OctileMixed", astar.Octile, grid.Pos(-5, 2), 58},
		{"Zero", astar.Zero, grid.Pos(9, 9), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.h(origin, tc.to))
			assert.Equal(t, tc.want, tc.h(tc.to, origin), "symmetric")
			assert.Zero(t, tc.h(tc.to, tc.to))
		})
	}
}

// TestEuclidean_ExactSquares guards the integer square root against float
// rounding near perfect squares.
func TestEuclidean_ExactSquares(t *testing.T) {
	for n := 1; n < 3000; n++ {
		got := astar.Euclidean(grid.Pos(0, 0), grid.Pos(n, 0))
		require.Equal(t, n*10, got, "n=%d", n)
		// n²+1 is still below (n+1)², so it truncates to n.
		require.Equal(t, n*10, astar.Euclidean(grid.Pos(0, 0), grid.Pos(n, 1)), "n=%d", n)
	}
}

func TestParseHeuristic(t *testing.T) {
	from, to := grid.Pos(0, 0), grid.Pos(5, 2)

	h, err := astar.ParseHeuristic("")
	require.NoError(t, err)
	assert.Equal(t, astar.Euclidean(from, to), h(from, to))

	for _, name := range astar.HeuristicNames() {
		h, err := astar.ParseHeuristic(name)
		require.NoError(t, err, name)
		require.NotNil(t, h, name)
	}

	h, err = astar.ParseHeuristic("octile")
	require.NoError(t, err)
	assert.Equal(t, 58, h(from, to))

	_, err = astar.ParseHeuristic("bogus")
	assert.ErrorIs(t, err, astar.ErrUnknownHeuristic)

	assert.Equal(t,
		[]string{"chebyshev", "dijkstra", "euclidean", "manhattan", "octile", "zero"},
		astar.HeuristicNames())
}
