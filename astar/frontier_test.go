package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier_OrderAndFIFO(t *testing.T) {
	var fr frontier
	fr.reset(10)

	require.NoError(t, fr.push(3, 0, 50))
	require.NoError(t, fr.push(4, 0, 40))
	require.NoError(t, fr.push(5, 0, 40))
	require.NoError(t, fr.push(6, 0, 45))

	var order []int
	for {
		e, ok := fr.popBest()
		if !ok {
			break
		}
		order = append(order, e.cell)
		assert.False(t, fr.isOpen(e.cell))
		assert.Zero(t, fr.bestPriority(e.cell))
	}
	assert.Equal(t, []int{4, 5, 6, 3}, order)
	assert.Zero(t, fr.stale)
}

func TestFrontier_ImproveLeavesStaleEntry(t *testing.T) {
	var fr frontier
	fr.reset(4)

	require.NoError(t, fr.push(1, 10, 60))
	require.NoError(t, fr.push(2, 10, 50))
	require.NoError(t, fr.improve(1, 5, 30))
	assert.Equal(t, 30, fr.bestPriority(1))
	assert.Equal(t, 3, fr.len())

	e, ok := fr.popBest()
	require.True(t, ok)
	assert.Equal(t, entry{cell: 1, g: 5, f: 30, seq: 3, gen: 2}, e)

	e, ok = fr.popBest()
	require.True(t, ok)
	assert.Equal(t, 2, e.cell)

	_, ok = fr.popBest()
	assert.False(t, ok)
	assert.Equal(t, 1, fr.stale)
	assert.Zero(t, fr.len())
}

func TestFrontier_Inconsistency(t *testing.T) {
	var fr frontier
	fr.reset(3)

	require.NoError(t, fr.push(0, 0, 20))
	assert.ErrorIs(t, fr.push(0, 0, 10), ErrInternalInconsistency)
	assert.ErrorIs(t, fr.improve(0, 0, 20), ErrInternalInconsistency)
	assert.ErrorIs(t, fr.improve(1, 0, 5), ErrInternalInconsistency)
}

func TestFrontier_ResetReusesBuffers(t *testing.T) {
	var fr frontier
	fr.reset(8)
	require.NoError(t, fr.push(7, 0, 1))
	require.NoError(t, fr.improve(7, 0, 0))
	_, _ = fr.popBest()

	fr.reset(4)
	assert.Len(t, fr.best, 4)
	assert.Zero(t, fr.len())
	assert.Zero(t, fr.stale)
	for i := 0; i < 4; i++ {
		assert.False(t, fr.isOpen(i))
		assert.Zero(t, fr.gen[i])
	}
}

func TestTracker(t *testing.T) {
	var tr tracker
	tr.reset(4)
	tr.markVisited(2)
	tr.setBackDirection(3, 5)
	assert.True(t, tr.isVisited(2))
	assert.False(t, tr.isVisited(3))
	assert.EqualValues(t, 5, tr.backDirection(3))

	tr.reset(4)
	assert.False(t, tr.isVisited(2))
	assert.EqualValues(t, 0, tr.backDirection(3))
}
