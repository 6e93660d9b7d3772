package manifold

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Sentinel errors for manifold parsing.
var (
	// ErrTooFewLines indicates a manifold without a start line and a splitter row.
	ErrTooFewLines = errors.Wrap(puzzle.ErrParse, "manifold: at least 2 lines required")
	// ErrNoStart indicates a first line without 'S'.
	ErrNoStart = errors.Wrap(puzzle.ErrParse, "manifold: first line has no start position")
)

// Manifold is the parsed diagram.
type Manifold struct {
	// Start is the column of 'S'.
	Start int
	// Rows lists the splitter columns of every line below the first, ascending.
	Rows [][]int
}

// Beams maps a column to the number of timelines whose beam is there.
type Beams map[int]int64
