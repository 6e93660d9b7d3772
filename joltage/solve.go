package joltage

import (
	"fmt"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Solve sums the best joltage of every bank for cfg.ShortBank and then
// cfg.LongBank batteries.
func Solve(text string, cfg puzzle.Config) ([]puzzle.Answer, error) {
	banks, err := ParseBanks(text)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("joltage: parsed %d banks", len(banks))

	var answers []puzzle.Answer
	for part, count := range []int{cfg.ShortBank, cfg.LongBank} {
		total, err := TotalJoltage(banks, count)
		if err != nil {
			return nil, err
		}
		answers = append(answers, puzzle.Answer{
			Part:  part + 1,
			Label: fmt.Sprintf("Max joltage %d sum", count),
			Value: total,
		})
	}
	return answers, nil
}
