package freshness

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Sentinel errors for freshness operations.
var (
	// ErrSectionCount indicates an inventory without exactly two sections.
	ErrSectionCount = errors.Wrap(puzzle.ErrParse, "freshness: inventory needs a range section and a stock section")
	// ErrMalformedRange indicates a range line that is not "<from>-<to>".
	ErrMalformedRange = errors.Wrap(puzzle.ErrParse, "freshness: malformed range")
	// ErrInvertedRange indicates a range whose start exceeds its end.
	ErrInvertedRange = errors.Wrap(puzzle.ErrPrecondition, "freshness: range start after end")
	// ErrMalformedID indicates a stock line that is not a non-negative integer.
	ErrMalformedID = errors.Wrap(puzzle.ErrParse, "freshness: malformed ingredient id")
)

// Range is an inclusive interval of fresh ingredient IDs.
type Range struct {
	From, To int64
}

// Len returns the number of IDs in r.
func (r Range) Len() int64 {
	return r.To - r.From + 1
}

// String renders r in its input form.
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.From, r.To)
}

// Inventory is the parsed input.
type Inventory struct {
	Fresh []Range
	Stock []int64
}
