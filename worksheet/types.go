package worksheet

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Sentinel errors for worksheet parsing.
var (
	// ErrTooFewLines indicates a worksheet without a number row and an operator row.
	ErrTooFewLines = errors.Wrap(puzzle.ErrParse, "worksheet: need number rows and an operator row")
	// ErrShapeMismatch indicates rows or operators disagreeing on the problem count.
	ErrShapeMismatch = errors.Wrap(puzzle.ErrParse, "worksheet: problem count mismatch")
	// ErrBadOperator indicates an operator other than '+' or '*', or one out of place.
	ErrBadOperator = errors.Wrap(puzzle.ErrParse, "worksheet: bad operator")
	// ErrMalformedNumber indicates an operand that is not a non-negative integer.
	ErrMalformedNumber = errors.Wrap(puzzle.ErrParse, "worksheet: malformed number")
)

// Op is a problem operator.
type Op byte

const (
	// Add sums the operands.
	Add Op = '+'
	// Multiply multiplies the operands.
	Multiply Op = '*'
)

// ParseOp maps "+" and "*" to their Op.
func ParseOp(s string) (Op, error) {
	switch s {
	case "+":
		return Add, nil
	case "*":
		return Multiply, nil
	}
	return 0, errors.Wrapf(ErrBadOperator, "%q", s)
}

// String returns the operator symbol.
func (o Op) String() string {
	return string(o)
}

// Problem is one operator applied to its operands.
type Problem struct {
	Op       Op
	Operands []int64
}

// Result applies the operator. An empty sum is 0 and an empty product 1.
func (p Problem) Result() int64 {
	if p.Op == Multiply {
		return puzzle.Product(p.Operands...)
	}
	return puzzle.Sum(p.Operands...)
}

// GrandTotal sums the results of problems.
func GrandTotal(problems []Problem) int64 {
	results := make([]int64, len(problems))
	for i, p := range problems {
		results[i] = p.Result()
	}
	return puzzle.Sum(results...)
}
