package paperroll

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/gridgraph"
	"github.com/katalvlaran/aoc2025/puzzle"
)

// Floor is a rectangular floor plan of paper rolls.
type Floor struct {
	grid *gridgraph.GridGraph
}

// Parse reads one row per line. Rows must all have the same width.
func Parse(text string) (*Floor, error) {
	lines := puzzle.Lines(text)
	values := make([][]int, len(lines))
	for y, line := range lines {
		values[y] = make([]int, len(line))
		for x, c := range []byte(line) {
			switch c {
			case '@':
				values[y][x] = Roll
			case '.':
				values[y][x] = Empty
			default:
				return nil, errors.Wrapf(ErrUnknownCell, "%q at row %d, column %d", c, y+1, x+1)
			}
		}
	}
	grid, err := gridgraph.From2D(values, gridgraph.Conn8)
	if err != nil {
		return nil, err
	}

	return &Floor{grid: grid}, nil
}

// Width returns the number of columns.
func (f *Floor) Width() int { return f.grid.Width }

// Height returns the number of rows.
func (f *Floor) Height() int { return f.grid.Height }

// Rolls returns how many rolls are on the floor.
func (f *Floor) Rolls() int {
	n := 0
	for _, row := range f.grid.CellValues {
		for _, v := range row {
			if v == Roll {
				n++
			}
		}
	}
	return n
}

// Accessible returns the positions of reachable rolls in row-major order.
func (f *Floor) Accessible() []Position {
	var out []Position
	for y := 0; y < f.grid.Height; y++ {
		for x := 0; x < f.grid.Width; x++ {
			if f.grid.CellValues[y][x] == Roll && f.grid.CountNeighbors(x, y, isRoll) < Crowd {
				out = append(out, Position{X: x, Y: y})
			}
		}
	}
	return out
}

// Remove clears the given positions.
// Returns gridgraph.ErrOutOfBounds for a position off the floor.
func (f *Floor) Remove(ps []Position) error {
	for _, p := range ps {
		if err := f.grid.SetValue(p.X, p.Y, Empty); err != nil {
			return err
		}
	}
	return nil
}

// clear empties ps, which must lie on the floor.
func (f *Floor) clear(ps []Position) {
	for _, p := range ps {
		f.grid.CellValues[p.Y][p.X] = Empty
	}
}

// Clusters returns the groups of rolls touching each other, diagonals
// included. Groups are ordered by their first roll in row-major order.
func (f *Floor) Clusters() [][]Position {
	comps := f.grid.ConnectedComponents()
	out := make([][]Position, len(comps))
	for i, comp := range comps {
		out[i] = make([]Position, len(comp))
		for j, idx := range comp {
			x, y := f.grid.Coordinate(idx)
			out[i][j] = Position{X: x, Y: y}
		}
	}
	return out
}

// Clone returns an independent copy of f.
func (f *Floor) Clone() *Floor {
	return &Floor{grid: f.grid.Clone()}
}

// CleanUp removes every accessible roll, round after round, from a copy of
// f until none is accessible. It returns the total removed and the number of
// rounds that removed anything. f itself is not changed.
func CleanUp(f *Floor) (removed, rounds int) {
	work := f.Clone()
	for {
		batch := work.Accessible()
		if len(batch) == 0 {
			return removed, rounds
		}
		work.clear(batch)
		removed += len(batch)
		rounds++
	}
}

// String renders the floor in its input form.
func (f *Floor) String() string {
	var b strings.Builder
	for y, row := range f.grid.CellValues {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, v := range row {
			if v == Roll {
				b.WriteByte('@')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

func isRoll(v int) bool { return v == Roll }
