package gridgraph

import (
	"github.com/pkg/errors"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, errors.Wrapf(ErrNonRectangular, "row %d has %d cells, want %d", y, len(row), w)
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}, nil
}

// From2D is NewGridGraph with the default land threshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the (dx,dy) offsets of the grid's connectivity.
// The slice is shared; callers must not modify it.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Value returns the value of cell (x,y).
func (gg *GridGraph) Value(x, y int) (int, error) {
	if !gg.InBounds(x, y) {
		return 0, gg.outOfBounds(x, y)
	}
	return gg.CellValues[y][x], nil
}

// SetValue overwrites the value of cell (x,y).
func (gg *GridGraph) SetValue(x, y, v int) error {
	if !gg.InBounds(x, y) {
		return gg.outOfBounds(x, y)
	}
	gg.CellValues[y][x] = v
	return nil
}

// Clone returns a deep copy sharing no cell storage with gg.
func (gg *GridGraph) Clone() *GridGraph {
	cells := make([][]int, gg.Height)
	for y := range cells {
		cells[y] = append([]int(nil), gg.CellValues[y]...)
	}
	c := *gg
	c.CellValues = cells

	return &c
}

// CountNeighbors returns how many in-bounds neighbors of (x,y) hold a value
// satisfying pred. Cells beyond the border do not count.
// Complexity: O(d), d = 4 or 8.
func (gg *GridGraph) CountNeighbors(x, y int, pred func(v int) bool) int {
	n := 0
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if gg.InBounds(nx, ny) && pred(gg.CellValues[ny][nx]) {
			n++
		}
	}
	return n
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

func (gg *GridGraph) outOfBounds(x, y int) error {
	return errors.Wrapf(ErrOutOfBounds, "(%d,%d) in %dx%d grid", x, y, gg.Width, gg.Height)
}
