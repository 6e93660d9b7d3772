package paperroll

import (
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Solve counts accessible rolls, then the rolls removed by a full clean-up.
func Solve(text string, _ puzzle.Config) ([]puzzle.Answer, error) {
	floor, err := Parse(text)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("paperroll: %dx%d floor with %d rolls", floor.Width(), floor.Height(), floor.Rolls())
	if klog.V(2) {
		klog.Infof("paperroll: rolls form %d clusters", len(floor.Clusters()))
	}

	accessible := len(floor.Accessible())
	removed, rounds := CleanUp(floor)
	klog.V(2).Infof("paperroll: clean-up took %d rounds", rounds)

	return []puzzle.Answer{
		{Part: 1, Label: "Accessible paper rolls", Value: int64(accessible)},
		{Part: 2, Label: "Removed paper rolls", Value: int64(removed)},
	}, nil
}
