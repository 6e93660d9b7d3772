package junction

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// LargestCircuitsProduct runs the bounded-budget policy: it applies the
// first Budget pairs of idx to fresh singleton circuits, redundant or not,
// and returns the product of the Top largest circuit sizes.
//
// A budget above idx.Len() applies every pair.
//
// Errors:
//   - ErrInvalidOption  : Budget < 0 or Top < 1.
//   - ErrTooFewCircuits : fewer than Top circuits remain.
//
// Complexity: O(K·α(n) + merges) after the index is built.
func LargestCircuitsProduct(idx *DistanceIndex, opts ...Option) (int64, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Budget < 0 || o.Top < 1 {
		return 0, errors.Wrapf(ErrInvalidOption, "budget %d, top %d", o.Budget, o.Top)
	}

	budget := o.Budget
	if budget > idx.Len() {
		klog.V(2).Infof("junction: budget %d exceeds %d pairs, applying all", budget, idx.Len())
		budget = idx.Len()
	}

	conn, err := ConnectPrefix(idx.Elements(), idx.pairs[:budget])
	if err != nil {
		return 0, err
	}

	sizes := conn.Sizes()
	if len(sizes) < o.Top {
		return 0, errors.Wrapf(ErrTooFewCircuits, "%d circuits after %d pairs, need %d", len(sizes), budget, o.Top)
	}
	top := make([]int64, o.Top)
	for i := range top {
		top[i] = int64(sizes[i])
	}

	return puzzle.Product(top...), nil
}

// ConnectPrefix applies pairs in order to n fresh singleton circuits and
// returns the resulting Connector.
func ConnectPrefix(n int, pairs []Pair) (*Connector, error) {
	conn := NewConnector(n)
	for _, p := range pairs {
		if _, err := conn.ApplyEdge(p.A, p.B); err != nil {
			return nil, err
		}
	}

	return conn, nil
}

// FinalConnection runs the full-convergence policy over idx and returns the
// pair whose application first leaves a single circuit.
func FinalConnection(idx *DistanceIndex) (Pair, error) {
	return Converge(idx.Elements(), idx.pairs)
}

// Converge applies pairs in order to n fresh singleton circuits and stops at
// the first pair that joins the last two circuits.
// Returns ErrNotConverged if the pairs run out first.
func Converge(n int, pairs []Pair) (Pair, error) {
	conn := NewConnector(n)
	for _, p := range pairs {
		joined, err := conn.ApplyEdge(p.A, p.B)
		if err != nil {
			return Pair{}, err
		}
		if joined && conn.Len() == 1 {
			klog.V(2).Infof("junction: converged on pair %d-%d at distance %.3f", p.A, p.B, p.Distance)
			return p, nil
		}
	}

	return Pair{}, errors.Wrapf(ErrNotConverged, "%d circuits left after %d pairs", conn.Len(), len(pairs))
}
