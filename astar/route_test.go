package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/grid"
)

func TestParseRoute(t *testing.T) {
	rt, err := astar.ParseRoute("7711", grid.Conn8)
	require.NoError(t, err)
	assert.Equal(t, []grid.Direction{7, 7, 1, 1}, rt.Steps)
	assert.Equal(t, "7711", rt.String())
	assert.Equal(t, 56, rt.Cost())
	assert.Equal(t, 4, rt.Len())

	empty, err := astar.ParseRoute("", grid.Conn4)
	require.NoError(t, err)
	assert.True(t, empty.Empty())
	assert.Zero(t, empty.Cost())

	for _, tc := range []struct {
		in   string
		conn grid.Connectivity
	}{
		{"8", grid.Conn8},
		{"04", grid.Conn4},
		{"1x", grid.Conn8},
		{"-1", grid.Conn8},
	} {
		_, err := astar.ParseRoute(tc.in, tc.conn)
		assert.ErrorIs(t, err, astar.ErrBadRoute, "input %q", tc.in)
	}
}

func TestRoute_Positions(t *testing.T) {
	rt, err := astar.ParseRoute("7711", grid.Conn8)
	require.NoError(t, err)

	want := []grid.Position{{X: 0, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 3, Y: 1}, {X: 4, Y: 2}}
	assert.Equal(t, want, rt.Positions(grid.Pos(0, 2)))
	assert.Equal(t, grid.Pos(4, 2), rt.End(grid.Pos(0, 2)))

	// Walk is restartable and stops early on request.
	var idx []int
	for i, p := range rt.Walk(grid.Pos(0, 2)) {
		idx = append(idx, i)
		if p == grid.Pos(2, 0) {
			break
		}
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Len(t, rt.Positions(grid.Pos(0, 2)), 5)
}

func TestRoute_Conn4Cost(t *testing.T) {
	rt, err := astar.ParseRoute("0123", grid.Conn4)
	require.NoError(t, err)
	assert.Equal(t, 40, rt.Cost())
	assert.Equal(t, grid.Pos(0, 0), rt.End(grid.Pos(0, 0)))
}

func TestRoute_Verify(t *testing.T) {
	g := mustRows(t, wallRows)
	start, goal := grid.Pos(0, 2), grid.Pos(4, 2)

	ok, err := astar.ParseRoute("7711", grid.Conn8)
	require.NoError(t, err)
	require.NoError(t, ok.Verify(g, start, goal))

	through, err := astar.ParseRoute("0000", grid.Conn8)
	require.NoError(t, err)
	assert.ErrorIs(t, through.Verify(g, start, goal), astar.ErrBadRoute)

	short, err := astar.ParseRoute("771", grid.Conn8)
	require.NoError(t, err)
	assert.ErrorIs(t, short.Verify(g, start, goal), astar.ErrBadRoute)

	offGrid, err := astar.ParseRoute("4", grid.Conn8)
	require.NoError(t, err)
	assert.ErrorIs(t, offGrid.Verify(g, start, grid.Pos(-1, 2)), astar.ErrBadRoute)

	wrongConn, err := astar.ParseRoute("0", grid.Conn4)
	require.NoError(t, err)
	assert.ErrorIs(t, wrongConn.Verify(g, grid.Pos(0, 0), grid.Pos(1, 0)), astar.ErrBadRoute)

	assert.ErrorIs(t, ok.Verify(nil, start, goal), astar.ErrNilGrid)
}

func TestRoute_InvalidDirections(t *testing.T) {
	g := emptyGrid(t, 5, 5)
	start := grid.Pos(0, 0)

	tooHigh := astar.Route{Conn: grid.Conn8, Steps: []grid.Direction{0, 8}}
	assert.ErrorIs(t, tooHigh.Validate(), astar.ErrBadRoute)
	assert.ErrorIs(t, tooHigh.Verify(g, start, grid.Pos(1, 0)), astar.ErrBadRoute)
	assert.Equal(t, 10, tooHigh.Cost())
	assert.Equal(t, grid.Pos(1, 0), tooHigh.End(start))
	assert.Equal(t, []grid.Position{start, grid.Pos(1, 0)}, tooHigh.Positions(start))

	negative := astar.Route{Conn: grid.Conn4, Steps: []grid.Direction{-1}}
	assert.ErrorIs(t, negative.Validate(), astar.ErrBadRoute)
	assert.Zero(t, negative.Cost())
	assert.Equal(t, start, negative.End(start))

	g4 := emptyGrid(t, 5, 5, grid.WithConnectivity(grid.Conn4))
	assert.ErrorIs(t, negative.Verify(g4, start, start), astar.ErrBadRoute)

	// Conn8 directions beyond 3 are out of range for Conn4.
	wide := astar.Route{Conn: grid.Conn4, Steps: []grid.Direction{5}}
	assert.ErrorIs(t, wide.Verify(g4, start, start), astar.ErrBadRoute)

	valid, err := astar.ParseRoute("1111", grid.Conn8)
	require.NoError(t, err)
	assert.NoError(t, valid.Validate())
}
