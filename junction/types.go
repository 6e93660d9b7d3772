package junction

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Sentinel errors for junction operations.
var (
	// ErrMalformedBox indicates a record that is not "x,y,z" with non-negative integers.
	ErrMalformedBox = errors.Wrap(puzzle.ErrParse, "junction: malformed box record")
	// ErrTooFewBoxes indicates fewer than two boxes; no pair can be formed.
	ErrTooFewBoxes = errors.Wrap(puzzle.ErrPrecondition, "junction: at least 2 boxes required")
	// ErrIdentityOutOfRange indicates a box identity outside [0, n).
	ErrIdentityOutOfRange = errors.Wrap(puzzle.ErrPrecondition, "junction: box identity out of range")
	// ErrEmptyMerge indicates Merge was called without circuits.
	ErrEmptyMerge = errors.Wrap(puzzle.ErrPrecondition, "junction: merge requires at least one circuit")
	// ErrInvalidOption indicates a negative budget or a non-positive top count.
	ErrInvalidOption = errors.Wrap(puzzle.ErrPrecondition, "junction: invalid option")
	// ErrTooFewCircuits indicates fewer circuits remain than are to be ranked.
	ErrTooFewCircuits = errors.Wrap(puzzle.ErrPrecondition, "junction: too few circuits to rank")
	// ErrNotConverged indicates the pairs ran out before a single circuit remained.
	ErrNotConverged = errors.Wrap(puzzle.ErrInvariant, "junction: circuits did not converge")
)

// MaxCoordinate is the largest accepted box coordinate. Squared distances
// between boxes within [0, MaxCoordinate] stay below 3·2⁶⁰ and fit an int64.
const MaxCoordinate = 1 << 30

// Options configures the bounded-budget policy.
type Options struct {
	// Budget is the number of closest pairs to apply.
	Budget int
	// Top is the number of largest circuits whose sizes are multiplied.
	Top int
}

// Option configures Options.
type Option func(*Options)

// WithBudget sets the number of closest pairs applied by LargestCircuitsProduct.
func WithBudget(k int) Option {
	return func(o *Options) {
		o.Budget = k
	}
}

// WithTop sets how many of the largest circuits LargestCircuitsProduct multiplies.
func WithTop(t int) Option {
	return func(o *Options) {
		o.Top = t
	}
}

// DefaultOptions returns Budget=1000, Top=3.
func DefaultOptions() Options {
	return Options{
		Budget: puzzle.DefaultCircuitBudget,
		Top:    puzzle.DefaultTopCircuits,
	}
}
