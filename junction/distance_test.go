package junction_test

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/junction"
)

func TestDistanceIndex_Shape(t *testing.T) {
	for _, n := range []int{2, 3, 7, 20} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			idx := junction.NewDistanceIndex(randomStore(t, n, int64(n)))
			require.Equal(t, n*(n-1)/2, idx.Len())
			assert.Equal(t, n, idx.Elements())

			seen := make(map[[2]int]bool, idx.Len())
			for _, p := range idx.Pairs() {
				assert.Less(t, p.A, p.B)
				assert.GreaterOrEqual(t, p.Distance, 0.0)
				key := [2]int{p.A, p.B}
				assert.False(t, seen[key], "duplicate pair %v", key)
				seen[key] = true
			}
		})
	}
}

func TestDistanceIndex_Sorted(t *testing.T) {
	idx := junction.NewDistanceIndex(randomStore(t, 60, 7))
	pairs := idx.Pairs()
	for i := 1; i < len(pairs); i++ {
		assert.LessOrEqual(t, pairs[i-1].Distance, pairs[i].Distance, "rank %d", i)
	}
}

func TestDistanceIndex_TieBreak(t *testing.T) {
	idx := junction.NewDistanceIndex(mustStore(t, triangle))
	var got []string
	for _, p := range idx.Closest(7) {
		got = append(got, fmt.Sprintf("%d-%d", p.A, p.B))
	}
	// 0-3 and 3-4 are both exactly 100 apart.
	assert.Equal(t, []string{"0-1", "0-2", "1-2", "1-3", "0-3", "3-4", "2-3"}, got)
}

func TestDistanceIndex_SpecExample(t *testing.T) {
	idx := junction.NewDistanceIndex(mustStore(t, "0,0,0\n0,0,10\n0,0,100\n"))
	pairs := idx.Pairs()
	require.Len(t, pairs, 3)

	assert.Equal(t, [2]int{0, 1}, [2]int{pairs[0].A, pairs[0].B})
	assert.InDelta(t, 10.0, pairs[0].Distance, 1e-12)
	assert.Equal(t, [2]int{1, 2}, [2]int{pairs[1].A, pairs[1].B})
	assert.InDelta(t, 90.0, pairs[1].Distance, 1e-12)
	assert.Equal(t, [2]int{0, 2}, [2]int{pairs[2].A, pairs[2].B})
	assert.InDelta(t, 100.0, pairs[2].Distance, 1e-12)
}

// TestDistanceIndex_PermutationInvariant checks that reordering the input only
// relabels identities: the multiset of distances stays the same.
func TestDistanceIndex_PermutationInvariant(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(sample), "\n")
	shuffled := append([]string(nil), lines...)
	rand.New(rand.NewSource(3)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	distances := func(text string) []float64 {
		var out []float64
		for _, p := range junction.NewDistanceIndex(mustStore(t, text)).Pairs() {
			out = append(out, p.Distance)
		}
		sort.Float64s(out)
		return out
	}
	assert.Equal(t, distances(sample), distances(strings.Join(shuffled, "\n")))
}

func TestDistanceIndex_Closest(t *testing.T) {
	idx := junction.NewDistanceIndex(mustStore(t, triangle))
	assert.Empty(t, idx.Closest(-3))
	assert.Empty(t, idx.Closest(0))
	assert.Len(t, idx.Closest(4), 4)
	assert.Len(t, idx.Closest(1000), idx.Len())

	// Copies do not alias the index.
	c := idx.Closest(1)
	c[0].A = 42
	assert.Equal(t, 0, idx.Closest(1)[0].A)
}

func TestDistanceIndex_All(t *testing.T) {
	idx := junction.NewDistanceIndex(mustStore(t, triangle))
	want := idx.Pairs()
	n := 0
	for rank, p := range idx.All() {
		assert.Equal(t, want[rank], p)
		n++
		if rank == 2 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

// TestDistanceIndex_ExtremeCoordinates spans the full coordinate range so
// squared distances come close to the int64 limit.
func TestDistanceIndex_ExtremeCoordinates(t *testing.T) {
	const m = junction.MaxCoordinate
	s, err := junction.NewStore([]junction.Box{
		{},
		{X: m, Y: m, Z: m},
		{Z: 1},
		{X: m},
	})
	require.NoError(t, err)

	pairs := junction.NewDistanceIndex(s).Pairs()
	require.Len(t, pairs, 6)
	assert.Equal(t, 0, pairs[0].A)
	assert.Equal(t, 2, pairs[0].B)
	assert.InDelta(t, 1.0, pairs[0].Distance, 0)
	for i, p := range pairs {
		assert.GreaterOrEqual(t, p.Distance, 0.0, "pair %d-%d", p.A, p.B)
		if i > 0 {
			assert.LessOrEqual(t, pairs[i-1].Distance, p.Distance, "rank %d", i)
		}
	}
	last := pairs[len(pairs)-1]
	assert.Equal(t, [2]int{0, 1}, [2]int{last.A, last.B})
}

// randomStore builds n boxes with coordinates in [0, 1000) from a fixed seed.
func randomStore(t testing.TB, n int, seed int64) *junction.Store {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	boxes := make([]junction.Box, n)
	for i := range boxes {
		boxes[i] = junction.Box{X: r.Int63n(1000), Y: r.Int63n(1000), Z: r.Int63n(1000)}
	}
	s, err := junction.NewStore(boxes)
	require.NoError(t, err)

	return s
}
