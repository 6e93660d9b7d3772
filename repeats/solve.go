package repeats

import (
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Solve sums the repeats of every range. Ranges are summed independently:
// a repeat inside two overlapping ranges counts twice.
func Solve(text string, _ puzzle.Config) ([]puzzle.Answer, error) {
	ranges, err := ParseRanges(text)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("repeats: parsed %d ranges", len(ranges))

	var doubles, all int64
	for _, r := range ranges {
		d, a := DoubleRepeats(r.From, r.To), AllRepeats(r.From, r.To)
		klog.V(2).Infof("repeats: %s has %d double and %d total repeats", r, d.Cardinality(), a.Cardinality())
		doubles += Sum(d)
		all += Sum(a)
	}

	return []puzzle.Answer{
		{Part: 1, Label: "Sum of double repeats", Value: doubles},
		{Part: 2, Label: "Sum of all repeats", Value: all},
	}, nil
}
