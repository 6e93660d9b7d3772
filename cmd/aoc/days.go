package main

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/dial"
	"github.com/katalvlaran/aoc2025/freshness"
	"github.com/katalvlaran/aoc2025/joltage"
	"github.com/katalvlaran/aoc2025/junction"
	"github.com/katalvlaran/aoc2025/manifold"
	"github.com/katalvlaran/aoc2025/paperroll"
	"github.com/katalvlaran/aoc2025/puzzle"
	"github.com/katalvlaran/aoc2025/repeats"
	"github.com/katalvlaran/aoc2025/tiles"
	"github.com/katalvlaran/aoc2025/worksheet"
)

// ErrUnknownDay indicates a day number with no registered solver.
var ErrUnknownDay = errors.New("aoc: unknown day")

// day is one registered puzzle.
type day struct {
	Number int
	Title  string
	Solve  puzzle.SolveFunc
}

var registry = map[int]day{
	1: {1, "Secret Entrance", dial.Solve},
	2: {2, "Gift Shop", repeats.Solve},
	3: {3, "Lobby", joltage.Solve},
	4: {4, "Printing Department", paperroll.Solve},
	5: {5, "Cafeteria", freshness.Solve},
	6: {6, "Trash Compactor", worksheet.Solve},
	7: {7, "Laboratories", manifold.Solve},
	8: {8, "Playground", junction.Solve},
	9: {9, "Movie Theater", tiles.Solve},
}

// lookup returns the registered day n.
func lookup(n int) (day, error) {
	d, ok := registry[n]
	if !ok {
		return day{}, errors.Wrapf(ErrUnknownDay, "%d", n)
	}
	return d, nil
}

// days returns every registered day in ascending order.
func days() []day {
	out := make([]day, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}
