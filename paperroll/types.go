package paperroll

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// ErrUnknownCell indicates a floor character other than '@' or '.'.
var ErrUnknownCell = errors.Wrap(puzzle.ErrParse, "paperroll: unknown floor cell")

const (
	// Empty is the cell value of bare floor.
	Empty = 0
	// Roll is the cell value of a paper roll.
	Roll = 1
	// Crowd is the neighbor count at which a roll becomes unreachable.
	Crowd = 4
)

// Position is a cell on the floor; X is the column and Y the row.
type Position struct {
	X, Y int
}
