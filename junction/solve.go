package junction

import (
	"fmt"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Solve parses the boxes in text and answers both parts:
//
//	part 1 – product of the cfg.TopCircuits largest circuit sizes after the
//	         cfg.CircuitBudget closest pairs are connected;
//	part 2 – product of the X coordinates of the two boxes whose connection
//	         first joins every box into one circuit.
func Solve(text string, cfg puzzle.Config) ([]puzzle.Answer, error) {
	store, err := ParseStore(text)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("junction: parsed %d boxes", store.Len())

	idx := NewDistanceIndex(store)
	klog.V(1).Infof("junction: indexed %d pairs", idx.Len())

	product, err := LargestCircuitsProduct(idx, WithBudget(cfg.CircuitBudget), WithTop(cfg.TopCircuits))
	if err != nil {
		return nil, err
	}

	last, err := FinalConnection(idx)
	if err != nil {
		return nil, err
	}
	a, err := store.At(last.A)
	if err != nil {
		return nil, err
	}
	b, err := store.At(last.B)
	if err != nil {
		return nil, err
	}

	return []puzzle.Answer{
		{Part: 1, Label: fmt.Sprintf("%d largest circuits' product", cfg.TopCircuits), Value: product},
		{Part: 2, Label: "X product of last 2 connected boxes", Value: a.X * b.X},
	}, nil
}
