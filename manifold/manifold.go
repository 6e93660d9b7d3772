package manifold

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Parse reads the diagram. Only 'S' on the first line and '^' below it
// carry meaning; every other character is empty space.
func Parse(text string) (*Manifold, error) {
	lines := puzzle.Lines(text)
	if len(lines) < 2 {
		return nil, errors.Wrapf(ErrTooFewLines, "got %d", len(lines))
	}
	start := strings.IndexByte(lines[0], 'S')
	if start < 0 {
		return nil, errors.Wrapf(ErrNoStart, "%q", lines[0])
	}

	m := &Manifold{Start: start, Rows: make([][]int, 0, len(lines)-1)}
	for _, line := range lines[1:] {
		var row []int
		for x := 0; x < len(line); x++ {
			if line[x] == '^' {
				row = append(row, x)
			}
		}
		m.Rows = append(m.Rows, row)
	}
	return m, nil
}

// Step passes beams through one row of splitters and returns the beams
// below it with the number of splits. beams is not modified.
//
// Steps:
//  1. Copy beams into the working row.
//  2. For each splitter, left to right: if a beam is on it, remove it and
//     add its timelines to the columns left and right.
//  3. The working row is the input of the next row.
func Step(beams Beams, splitters []int) (Beams, int) {
	next := make(Beams, len(beams)+len(splitters))
	for x, n := range beams {
		next[x] = n
	}
	splits := 0
	for _, x := range splitters {
		n, ok := next[x]
		if !ok {
			continue
		}
		delete(next, x)
		next[x-1] += n
		next[x+1] += n
		splits++
	}
	return next, splits
}

// Run drops a single beam from m.Start through every row and returns the
// total splits and the timelines reaching the bottom.
func (m *Manifold) Run() (splits int, timelines int64) {
	beams := Beams{m.Start: 1}
	for _, row := range m.Rows {
		var s int
		beams, s = Step(beams, row)
		splits += s
	}
	for _, n := range beams {
		timelines += n
	}
	return splits, timelines
}
