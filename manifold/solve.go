package manifold

import (
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Solve counts beam splits and timelines.
func Solve(text string, _ puzzle.Config) ([]puzzle.Answer, error) {
	m, err := Parse(text)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("manifold: %d rows, starting at column %d", len(m.Rows), m.Start)

	splits, timelines := m.Run()

	return []puzzle.Answer{
		{Part: 1, Label: "Total splits", Value: int64(splits)},
		{Part: 2, Label: "Total timelines", Value: timelines},
	}, nil
}
