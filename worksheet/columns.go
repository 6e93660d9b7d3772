package worksheet

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Transpose turns lines into character columns, padding short lines with
// spaces. Column i holds the i-th character of every line, top to bottom.
//
//	Transpose([]string{"123", "456", " 7", "*"}) == []string{"14 *", "257 ", "36  "}
func Transpose(lines []string) []string {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	columns := make([]string, width)
	buf := make([]byte, len(lines))
	for c := 0; c < width; c++ {
		for r, l := range lines {
			buf[r] = ' '
			if c < len(l) {
				buf[r] = l[c]
			}
		}
		columns[c] = string(buf)
	}
	return columns
}

// SplitColumns groups columns into problems separated by all-blank columns.
// Runs of blank columns never produce an empty group.
func SplitColumns(columns []string) [][]string {
	var (
		groups [][]string
		cur    []string
	)
	for _, col := range columns {
		if strings.TrimSpace(col) == "" {
			if len(cur) > 0 {
				groups = append(groups, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, col)
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// ParseProblem reads one group of columns. The last character of each
// column is the operator row: the first column carries the operator, the
// rest a space. The other characters of a column are the digits of one
// operand, read top to bottom, spaces ignored.
func ParseProblem(columns []string) (Problem, error) {
	if len(columns) == 0 {
		return Problem{}, errors.Wrap(ErrShapeMismatch, "empty column group")
	}
	var p Problem
	for i, col := range columns {
		if col == "" {
			return Problem{}, errors.Wrapf(ErrShapeMismatch, "empty column %d", i+1)
		}
		body, sym := col[:len(col)-1], string(col[len(col)-1])
		if i == 0 {
			op, err := ParseOp(sym)
			if err != nil {
				return Problem{}, err
			}
			p.Op = op
		} else if sym != " " {
			return Problem{}, errors.Wrapf(ErrBadOperator, "%q after the first column of a problem", sym)
		}

		var n int64
		digits := 0
		for _, c := range []byte(body) {
			switch {
			case c == ' ':
			case c >= '0' && c <= '9':
				n = n*10 + int64(c-'0')
				digits++
			default:
				return Problem{}, errors.Wrapf(ErrMalformedNumber, "column %q", col)
			}
		}
		if digits == 0 || digits > 18 {
			return Problem{}, errors.Wrapf(ErrMalformedNumber, "column %q", col)
		}
		p.Operands = append(p.Operands, n)
	}
	return p, nil
}

// ParseColumns reads the worksheet column by column.
func ParseColumns(text string) ([]Problem, error) {
	lines := puzzle.RawLines(text)
	if len(lines) < 2 {
		return nil, errors.Wrapf(ErrTooFewLines, "got %d", len(lines))
	}
	groups := SplitColumns(Transpose(lines))
	problems := make([]Problem, 0, len(groups))
	for i, g := range groups {
		p, err := ParseProblem(g)
		if err != nil {
			return nil, errors.Wrapf(err, "problem %d", i+1)
		}
		problems = append(problems, p)
	}
	return problems, nil
}
