package repeats

import (
	"math"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// DoubleRepeats returns the numbers in [from, to] made of a digit sequence
// written exactly twice.
func DoubleRepeats(from, to int64) mapset.Set[int64] {
	return collect(from, to, 2, 2)
}

// AllRepeats returns the numbers in [from, to] made of a digit sequence
// written two or more times. 111111 is reported once although it is 1×6,
// 11×3 and 111×2.
func AllRepeats(from, to int64) mapset.Set[int64] {
	return collect(from, to, 2, math.MaxInt)
}

// Sorted returns the members of s in ascending order.
func Sorted(s mapset.Set[int64]) []int64 {
	out := s.ToSlice()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Sum adds the members of s.
func Sum(s mapset.Set[int64]) int64 {
	var total int64
	s.Each(func(v int64) bool {
		total += v
		return false
	})
	return total
}

// collect gathers repeats with a repeat count in [minTimes, maxTimes].
//
// Steps:
//  1. For each sequence length L (1, 2, …) take the sequences
//     [10^(L-1), 10^L - 1].
//  2. For each count t, the repeats are seq·m with m = 1 + 10^L + … ;
//     intersect the sequence interval with [⌈from/m⌉, ⌊to/m⌋].
//  3. Stop a length once the smallest repeat exceeds to, and stop overall
//     once even the double repeat of the smallest sequence does.
func collect(from, to int64, minTimes, maxTimes int) mapset.Set[int64] {
	found := mapset.NewThreadUnsafeSet[int64]()
	if to < 1 || from > to {
		return found
	}
	for place, minSeq := int64(10), int64(1); ; place, minSeq = place*10, minSeq*10 {
		maxSeq := place - 1
		m, ok := extend(1, place)
		if !ok || overflows(minSeq, m) || minSeq*m > to {
			return found
		}
		for t := 2; t <= maxTimes; t++ {
			if t >= minTimes {
				lo := max(minSeq, ceilDiv(from, m))
				hi := min(maxSeq, to/m)
				for seq := lo; seq <= hi; seq++ {
					found.Add(seq * m)
				}
			}
			if m, ok = extend(m, place); !ok || overflows(minSeq, m) || minSeq*m > to {
				break
			}
		}
		if place > math.MaxInt64/10 {
			return found
		}
	}
}

// extend appends one more sequence slot to multiplier m: m·place + 1.
func extend(m, place int64) (int64, bool) {
	if m > (math.MaxInt64-1)/place {
		return 0, false
	}
	return m*place + 1, true
}

func overflows(a, b int64) bool {
	return b != 0 && a > math.MaxInt64/b
}

func ceilDiv(a, b int64) int64 {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
