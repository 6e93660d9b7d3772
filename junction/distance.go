package junction

import (
	"iter"
	"sort"
)

// Pair is one entry of the distance index: boxes A < B and their distance.
type Pair struct {
	A, B     int
	Distance float64

	squared int64
}

// less orders pairs by exact squared distance, then A, then B.
func (p Pair) less(q Pair) bool {
	if p.squared != q.squared {
		return p.squared < q.squared
	}
	if p.A != q.A {
		return p.A < q.A
	}
	return p.B < q.B
}

// DistanceIndex holds every unordered pair of a Store sorted closest first.
// It is built once and never updated.
type DistanceIndex struct {
	n     int
	pairs []Pair
}

// NewDistanceIndex enumerates and sorts all n·(n−1)/2 pairs of s.
//
// Ordering uses the integer squared distance so equal distances compare
// exactly; ties fall back to (A, B) ascending.
//
// Complexity: O(n² log n) time, O(n²) memory.
func NewDistanceIndex(s *Store) *DistanceIndex {
	n := s.Len()
	pairs := make([]Pair, 0, n*(n-1)/2)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			sq := s.boxes[a].SquaredDistance(s.boxes[b])
			pairs = append(pairs, Pair{
				A:        a,
				B:        b,
				Distance: s.boxes[a].Distance(s.boxes[b]),
				squared:  sq,
			})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].less(pairs[j])
	})

	return &DistanceIndex{n: n, pairs: pairs}
}

// Elements returns the number of boxes the index was built from.
func (d *DistanceIndex) Elements() int {
	return d.n
}

// Len returns the number of pairs, n·(n−1)/2.
func (d *DistanceIndex) Len() int {
	return len(d.pairs)
}

// Pairs returns a copy of all pairs, closest first.
func (d *DistanceIndex) Pairs() []Pair {
	return d.Closest(len(d.pairs))
}

// Closest returns a copy of the first k pairs. k is clamped to [0, Len()].
func (d *DistanceIndex) Closest(k int) []Pair {
	k = max(0, min(k, len(d.pairs)))
	out := make([]Pair, k)
	copy(out, d.pairs[:k])

	return out
}

// All yields (rank, pair) closest first without copying the index.
func (d *DistanceIndex) All() iter.Seq2[int, Pair] {
	return func(yield func(int, Pair) bool) {
		for i, p := range d.pairs {
			if !yield(i, p) {
				return
			}
		}
	}
}
