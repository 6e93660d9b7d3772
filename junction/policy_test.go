package junction_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/junction"
	"github.com/katalvlaran/aoc2025/puzzle"
)

func TestLargestCircuitsProduct(t *testing.T) {
	cases := []struct {
		name  string
		input string
		opts  []junction.Option
		want  int64
	}{
		{"sample 10 pairs", sample, []junction.Option{junction.WithBudget(10)}, 40},
		{"triangle 3 pairs", triangle, []junction.Option{junction.WithBudget(3)}, 3},
		{"zero budget", triangle, []junction.Option{junction.WithBudget(0)}, 1},
		{"top one", triangle, []junction.Option{junction.WithBudget(1), junction.WithTop(1)}, 2},
		{"budget clamped", triangle, []junction.Option{junction.WithBudget(1000), junction.WithTop(1)}, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			idx := junction.NewDistanceIndex(mustStore(t, tc.input))
			got, err := junction.LargestCircuitsProduct(idx, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLargestCircuitsProduct_TooFewCircuits(t *testing.T) {
	idx := junction.NewDistanceIndex(mustStore(t, triangle))

	// The fourth pair pulls box 3 in, leaving sizes [4 1].
	_, err := junction.LargestCircuitsProduct(idx, junction.WithBudget(4))
	require.ErrorIs(t, err, junction.ErrTooFewCircuits)
	assert.ErrorIs(t, err, puzzle.ErrPrecondition)
	assert.Contains(t, err.Error(), "2 circuits after 4 pairs, need 3")
}

func TestLargestCircuitsProduct_InvalidOptions(t *testing.T) {
	idx := junction.NewDistanceIndex(mustStore(t, triangle))
	for _, opt := range []junction.Option{junction.WithBudget(-1), junction.WithTop(0)} {
		_, err := junction.LargestCircuitsProduct(idx, opt)
		assert.ErrorIs(t, err, junction.ErrInvalidOption)
	}
}

func TestLargestCircuitsProduct_RedundantPairsCount(t *testing.T) {
	// Pairs 0-1 and 0-2 join the cluster; 1-2 is redundant but still spends
	// budget, so box 3 stays alone after three pairs.
	idx := junction.NewDistanceIndex(mustStore(t, triangle))
	conn, err := junction.ConnectPrefix(idx.Elements(), idx.Closest(3))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 1}, conn.Sizes())
	assert.Equal(t, 3, conn.Circuits()[0].Links())
}

func TestFinalConnection(t *testing.T) {
	cases := []struct {
		name  string
		input string
		a, b  int
	}{
		{"sample", sample, 10, 12},
		{"triangle", triangle, 3, 4},
		{"collinear", "0,0,0\n0,0,10\n0,0,100\n", 1, 2},
		{"two boxes", "5,5,5\n1,1,1\n", 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			idx := junction.NewDistanceIndex(mustStore(t, tc.input))
			p, err := junction.FinalConnection(idx)
			require.NoError(t, err)
			assert.Equal(t, tc.a, p.A)
			assert.Equal(t, tc.b, p.B)
		})
	}
}

func TestConverge_NotConverged(t *testing.T) {
	idx := junction.NewDistanceIndex(mustStore(t, triangle))
	_, err := junction.Converge(idx.Elements(), idx.Closest(3))
	require.ErrorIs(t, err, junction.ErrNotConverged)
	assert.True(t, errors.Is(err, puzzle.ErrInvariant))
}

func TestConverge_StopsAtFirstSingleCircuit(t *testing.T) {
	idx := junction.NewDistanceIndex(mustStore(t, sample))
	want, err := junction.FinalConnection(idx)
	require.NoError(t, err)

	// Trailing pairs after convergence do not move the answer.
	got, err := junction.Converge(idx.Elements(), idx.Pairs())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// The same pairs in the same order reach one circuit only at want.
	var prefix []junction.Pair
	for _, p := range idx.Pairs() {
		if p == want {
			break
		}
		prefix = append(prefix, p)
	}
	conn, err := junction.ConnectPrefix(idx.Elements(), prefix)
	require.NoError(t, err)
	assert.Equal(t, 2, conn.Len())
}
