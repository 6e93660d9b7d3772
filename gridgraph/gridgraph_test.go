package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/gridgraph"
	"github.com/katalvlaran/aoc2025/puzzle"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name     string
		grid     [][]int
		err      error
		category error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid, puzzle.ErrPrecondition},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid, puzzle.ErrPrecondition},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular, puzzle.ErrParse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, tc.category)
		})
	}
}

// TestNewGridGraph_Copies ensures the grid owns its cells.
func TestNewGridGraph_Copies(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	gg, err := gridgraph.From2D(src, gridgraph.Conn4)
	require.NoError(t, err)

	src[0][0] = 9
	v, err := gg.Value(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, gg.Width)
	assert.Equal(t, 2, gg.Height)
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{0, 1, 0}, {1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(xy[0], xy[1]), "InBounds%v", xy)
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(xy[0], xy[1]), "InBounds%v", xy)
	}
}

func TestNeighborOffsets(t *testing.T) {
	grid := [][]int{{0}}
	g4, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)
	g8, err := gridgraph.From2D(grid, gridgraph.Conn8)
	require.NoError(t, err)

	assert.Len(t, g4.NeighborOffsets(), 4)
	assert.Len(t, g8.NeighborOffsets(), 8)
	for _, d := range g8.NeighborOffsets() {
		assert.NotEqual(t, [2]int{0, 0}, d)
	}
}

//----------------------------------------------------------------------------//
// Cell access Tests
//----------------------------------------------------------------------------//

func TestValueAndSetValue(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 2, 3}, {4, 5, 6}}, gridgraph.Conn4)
	require.NoError(t, err)

	v, err := gg.Value(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	require.NoError(t, gg.SetValue(2, 1, 0))
	v, _ = gg.Value(2, 1)
	assert.Equal(t, 0, v)

	_, err = gg.Value(3, 0)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	assert.ErrorIs(t, gg.SetValue(0, -1, 1), gridgraph.ErrOutOfBounds)
}

func TestClone(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 1}, {1, 1}}, gridgraph.Conn8)
	require.NoError(t, err)

	c := gg.Clone()
	require.NoError(t, c.SetValue(1, 1, 0))

	orig, _ := gg.Value(1, 1)
	assert.Equal(t, 1, orig)
	assert.Equal(t, gg.Conn, c.Conn)
	assert.Equal(t, gg.NeighborOffsets(), c.NeighborOffsets())
}

func TestIndexCoordinate(t *testing.T) {
	gg, err := gridgraph.From2D(make([][]int, 3, 3), gridgraph.Conn4)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	gg, err = gridgraph.From2D([][]int{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, gridgraph.Conn4)
	require.NoError(t, err)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i := gg.Index(x, y)
			assert.Equal(t, y*4+x, i)
			cx, cy := gg.Coordinate(i)
			assert.Equal(t, [2]int{x, y}, [2]int{cx, cy})
		}
	}
}

//----------------------------------------------------------------------------//
// CountNeighbors Tests
//----------------------------------------------------------------------------//

// TestCountNeighbors compares 4- and 8-connectivity on a full 3×3 block.
func TestCountNeighbors(t *testing.T) {
	grid := [][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}
	one := func(v int) bool { return v == 1 }
	g4, _ := gridgraph.From2D(grid, gridgraph.Conn4)
	g8, _ := gridgraph.From2D(grid, gridgraph.Conn8)

	cases := []struct {
		x, y   int
		n4, n8 int
	}{
		{1, 1, 4, 8}, // center
		{0, 0, 2, 3}, // corner
		{1, 0, 3, 5}, // edge
	}
	for _, tc := range cases {
		assert.Equal(t, tc.n4, g4.CountNeighbors(tc.x, tc.y, one), "Conn4 (%d,%d)", tc.x, tc.y)
		assert.Equal(t, tc.n8, g8.CountNeighbors(tc.x, tc.y, one), "Conn8 (%d,%d)", tc.x, tc.y)
	}

	require.NoError(t, g8.SetValue(0, 0, 0))
	assert.Equal(t, 7, g8.CountNeighbors(1, 1, one))
}
