package joltage

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// MaxCount is the largest battery count whose joltage fits in an int64.
const MaxCount = 18

// Sentinel errors for joltage operations.
var (
	// ErrMalformedBank indicates a bank line with a character other than 0–9.
	ErrMalformedBank = errors.Wrap(puzzle.ErrParse, "joltage: malformed bank")
	// ErrBankTooShort indicates a bank with fewer batteries than requested.
	ErrBankTooShort = errors.Wrap(puzzle.ErrPrecondition, "joltage: bank shorter than battery count")
	// ErrCountTooLarge indicates a battery count above MaxCount.
	ErrCountTooLarge = errors.Wrap(puzzle.ErrPrecondition, "joltage: battery count too large")
)

// Bank is a row of battery joltages, each 0–9.
type Bank []int8
