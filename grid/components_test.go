package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridastar/grid"
)

// TestConnectedComponents_Conn4 splits free cells by a vertical wall.
//
//	. O .
//	. O .
func TestConnectedComponents_Conn4(t *testing.T) {
	g, err := grid.FromRows([]string{".O.", ".O."}, grid.WithConnectivity(grid.Conn4))
	require.NoError(t, err)

	comps := g.ConnectedComponents()
	require.Len(t, comps, 2)
	assert.ElementsMatch(t, []int{0, 3}, comps[0])
	assert.ElementsMatch(t, []int{2, 5}, comps[1])
}

// TestConnectedComponents_DiagonalTouch shows diagonal corners join under Conn8 only.
//
//	. O
//	O .
func TestConnectedComponents_DiagonalTouch(t *testing.T) {
	rows := []string{".O", "O."}

	g4, _ := grid.FromRows(rows, grid.WithConnectivity(grid.Conn4))
	assert.Len(t, g4.ConnectedComponents(), 2)
	assert.False(t, g4.Connected(grid.Pos(0, 0), grid.Pos(1, 1)))

	g8, _ := grid.FromRows(rows, grid.WithConnectivity(grid.Conn8))
	assert.Len(t, g8.ConnectedComponents(), 1)
	assert.True(t, g8.Connected(grid.Pos(0, 0), grid.Pos(1, 1)))
}

func TestComponentLabels(t *testing.T) {
	g, _ := grid.FromRows([]string{
		"..O..",
		"OOO..",
		"...OO",
	}, grid.WithConnectivity(grid.Conn4))

	labels, count := g.ComponentLabels()
	require.Equal(t, 3, count)
	assert.Equal(t, 0, labels[g.Index(grid.Pos(0, 0))])
	assert.Equal(t, 0, labels[g.Index(grid.Pos(1, 0))])
	assert.Equal(t, -1, labels[g.Index(grid.Pos(2, 0))])
	assert.Equal(t, 1, labels[g.Index(grid.Pos(3, 0))])
	assert.Equal(t, 1, labels[g.Index(grid.Pos(4, 1))])
	assert.Equal(t, -1, labels[g.Index(grid.Pos(3, 2))])
	assert.Equal(t, 2, labels[g.Index(grid.Pos(0, 2))])
	assert.False(t, g.Connected(grid.Pos(0, 0), grid.Pos(4, 0)))
	assert.False(t, g.Connected(grid.Pos(0, 0), grid.Pos(2, 0)), "blocked cells are never connected")
}
