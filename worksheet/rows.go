package worksheet

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// ParseRows reads the worksheet row by row: problem i takes the i-th
// number of every row and the i-th operator.
func ParseRows(text string) ([]Problem, error) {
	lines := puzzle.RawLines(text)
	if len(lines) < 2 {
		return nil, errors.Wrapf(ErrTooFewLines, "got %d", len(lines))
	}
	numberLines, opLine := lines[:len(lines)-1], lines[len(lines)-1]

	symbols := strings.Fields(opLine)
	problems := make([]Problem, len(symbols))
	for i, sym := range symbols {
		op, err := ParseOp(sym)
		if err != nil {
			return nil, errors.Wrapf(err, "operator %d", i+1)
		}
		problems[i].Op = op
	}

	for r, line := range numberLines {
		fields := strings.Fields(line)
		if len(fields) != len(problems) {
			return nil, errors.Wrapf(ErrShapeMismatch, "row %d has %d numbers, %d operators", r+1, len(fields), len(problems))
		}
		for i, f := range fields {
			n, err := strconv.ParseUint(f, 10, 63)
			if err != nil {
				return nil, errors.Wrapf(ErrMalformedNumber, "row %d: %q", r+1, f)
			}
			problems[i].Operands = append(problems[i].Operands, int64(n))
		}
	}

	return problems, nil
}
