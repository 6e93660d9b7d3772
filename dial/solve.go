package dial

import (
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Solve turns a dial starting at cfg.DialStart through the turns in text.
func Solve(text string, cfg puzzle.Config) ([]puzzle.Answer, error) {
	turns, err := ParseTurns(text)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("dial: parsed %d turns, starting at %d", len(turns), cfg.DialStart)

	stops, total := Run(cfg.DialStart, turns)

	return []puzzle.Answer{
		{Part: 1, Label: "Stop zeroes", Value: int64(stops)},
		{Part: 2, Label: "Total zeroes", Value: int64(total)},
	}, nil
}
