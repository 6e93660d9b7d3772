package freshness

import (
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Solve counts fresh ingredients in stock, then every ID the ranges cover.
func Solve(text string, _ puzzle.Config) ([]puzzle.Answer, error) {
	inv, err := Parse(text)
	if err != nil {
		return nil, err
	}
	idx := NewIndex(inv.Fresh)
	klog.V(1).Infof("freshness: %d ranges compacted to %d, %d in stock", len(inv.Fresh), idx.Len(), len(inv.Stock))

	return []puzzle.Answer{
		{Part: 1, Label: "Fresh ingredients", Value: int64(len(idx.Fresh(inv.Stock)))},
		{Part: 2, Label: "Fresh IDs", Value: Count(inv.Fresh)},
	}, nil
}
