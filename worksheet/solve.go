package worksheet

import (
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Solve totals the worksheet read by rows, then read by columns.
func Solve(text string, _ puzzle.Config) ([]puzzle.Answer, error) {
	byRows, err := ParseRows(text)
	if err != nil {
		return nil, err
	}
	byColumns, err := ParseColumns(text)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("worksheet: %d problems by rows, %d by columns", len(byRows), len(byColumns))

	return []puzzle.Answer{
		{Part: 1, Label: "Total sum of solutions", Value: GrandTotal(byRows)},
		{Part: 2, Label: "Total sum of solutions", Value: GrandTotal(byColumns)},
	}, nil
}
