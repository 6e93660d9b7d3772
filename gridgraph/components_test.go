package gridgraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/gridgraph"
)

// TestConnectedComponents_Simple4 checks a 4-connected grid with three islands.
func TestConnectedComponents_Simple4(t *testing.T) {
	grid := [][]int{
		{1, 1, 0, 0, 2},
		{1, 0, 0, 2, 2},
		{0, 0, 3, 0, 0},
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 3)
	assert.ElementsMatch(t, []int{0, 1, 5}, comps[0])
	assert.ElementsMatch(t, []int{4, 8, 9}, comps[1])
	assert.Equal(t, []int{12}, comps[2])
}

// TestConnectedComponents_Diagonal8 verifies that an X shape is one island under Conn8.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	g8, err := gridgraph.From2D(grid, gridgraph.Conn8)
	require.NoError(t, err)
	comps := g8.ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 9)

	g4, _ := gridgraph.From2D(grid, gridgraph.Conn4)
	assert.Len(t, g4.ConnectedComponents(), 9)
}

// TestConnectedComponents_Threshold treats values below LandThreshold as water.
func TestConnectedComponents_Threshold(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.LandThreshold = 5
	gg, err := gridgraph.NewGridGraph([][]int{{5, 4, 9}, {1, 1, 7}}, opts)
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)
	assert.Equal(t, []int{0}, comps[0])
	assert.ElementsMatch(t, []int{2, 5}, comps[1])
}

// TestConnectedComponents_AllWater covers the degenerate cases.
func TestConnectedComponents_AllWater(t *testing.T) {
	gg, _ := gridgraph.From2D([][]int{{0, 0}, {0, 0}}, gridgraph.Conn4)
	assert.Empty(t, gg.ConnectedComponents())

	single, _ := gridgraph.From2D([][]int{{0, 1}}, gridgraph.Conn4)
	assert.Equal(t, [][]int{{1}}, single.ConnectedComponents())
}

//----------------------------------------------------------------------------//
// Flood Tests
//----------------------------------------------------------------------------//

// TestFlood_Ring floods the outside of a closed ring without entering it.
func TestFlood_Ring(t *testing.T) {
	grid := [][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 1, 0, 1, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
	}
	open := func(v int) bool { return v == 0 }
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)

	outside, err := gg.Flood(0, 0, open)
	require.NoError(t, err)
	assert.Len(t, outside, 16)
	assert.NotContains(t, outside, gg.Index(2, 2))
	assert.Equal(t, gg.Index(0, 0), outside[0])

	inside, err := gg.Flood(2, 2, open)
	require.NoError(t, err)
	assert.Equal(t, []int{gg.Index(2, 2)}, inside)

	// Under Conn8 the ring still seals its center: diagonals of (2,2) are walls.
	g8, _ := gridgraph.From2D(grid, gridgraph.Conn8)
	outside8, _ := g8.Flood(0, 0, open)
	assert.Len(t, outside8, 16)
}

func TestFlood_Edges(t *testing.T) {
	gg, _ := gridgraph.From2D([][]int{{1, 0}, {0, 0}}, gridgraph.Conn4)
	open := func(v int) bool { return v == 0 }

	got, err := gg.Flood(0, 0, open)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = gg.Flood(2, 0, open)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	got, err = gg.Flood(1, 1, open)
	require.NoError(t, err)
	sort.Ints(got)
	assert.Equal(t, []int{1, 2, 3}, got)
}
