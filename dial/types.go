package dial

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Size is the number of positions on the dial.
const Size = 100

// ErrMalformedTurn indicates a record that is not "L<n>" or "R<n>".
var ErrMalformedTurn = errors.Wrap(puzzle.ErrParse, "dial: malformed turn")

// Direction is the way a turn rotates the dial.
type Direction int

const (
	// Left rotates toward lower numbers.
	Left Direction = iota
	// Right rotates toward higher numbers.
	Right
)

// String returns "L" or "R".
func (d Direction) String() string {
	if d == Left {
		return "L"
	}
	return "R"
}

// Turn is one rotation.
type Turn struct {
	Dir    Direction
	Clicks int
}

// String renders the turn in its input form.
func (t Turn) String() string {
	return fmt.Sprintf("%s%d", t.Dir, t.Clicks)
}
