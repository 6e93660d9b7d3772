package repeats

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Sentinel errors for range parsing.
var (
	// ErrMalformedRange indicates a record that is not "<from>-<to>".
	ErrMalformedRange = errors.Wrap(puzzle.ErrParse, "repeats: malformed range")
	// ErrInvertedRange indicates a range whose start exceeds its end.
	ErrInvertedRange = errors.Wrap(puzzle.ErrPrecondition, "repeats: range start after end")
)

// Range is an inclusive interval of product IDs.
type Range struct {
	From, To int64
}

// String renders the range in its input form.
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.From, r.To)
}
