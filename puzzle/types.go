package puzzle

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error categories. Package sentinels wrap one of these.
var (
	// ErrParse indicates a malformed input record.
	ErrParse = errors.New("parse error")
	// ErrPrecondition indicates input that is well-formed but cannot be solved.
	ErrPrecondition = errors.New("precondition failed")
	// ErrInvariant indicates a state that valid input can never reach.
	ErrInvariant = errors.New("invariant violated")
)

// Default configuration values.
const (
	DefaultInputDir      = "inputs"
	DefaultCircuitBudget = 1000
	DefaultTopCircuits   = 3
	DefaultShortBank     = 2
	DefaultLongBank      = 12
	DefaultDialStart     = 50
)

// Answer is one printed result of a day.
type Answer struct {
	Part  int    // 1 or 2
	Label string // human readable description of the value
	Value int64
}

// String renders the answer as "<label> (part <n>): <value>".
func (a Answer) String() string {
	return fmt.Sprintf("%s (part %d): %d", a.Label, a.Part, a.Value)
}

// Config carries tunables into solvers. The zero value is not useful; start
// from DefaultConfig.
type Config struct {
	// InputDir is the directory holding dayN.txt files (CLI only).
	InputDir string
	// CircuitBudget is the number of closest pairs connected by day 8 part 1.
	CircuitBudget int
	// TopCircuits is how many of the largest circuits day 8 part 1 multiplies.
	TopCircuits int
	// ShortBank and LongBank are the digit counts of day 3 parts 1 and 2.
	ShortBank, LongBank int
	// DialStart is the initial position of the day 1 dial.
	DialStart int
}

// DefaultConfig returns the configuration the puzzles are defined with.
func DefaultConfig() Config {
	return Config{
		InputDir:      DefaultInputDir,
		CircuitBudget: DefaultCircuitBudget,
		TopCircuits:   DefaultTopCircuits,
		ShortBank:     DefaultShortBank,
		LongBank:      DefaultLongBank,
		DialStart:     DefaultDialStart,
	}
}

// SolveFunc solves one day for the given input text.
type SolveFunc func(text string, cfg Config) ([]Answer, error)
