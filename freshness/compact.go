package freshness

import (
	"sort"
)

// Compact returns ranges merged into a list sorted by start in which no two
// ranges overlap. Ranges merge when the next start is at or before the
// current end; adjacent ranges such as 1-5 and 6-9 stay separate. The input
// is not modified.
func Compact(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}
	sorted := append([]Range(nil), ranges...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].From < sorted[j].From })

	out := []Range{sorted[0]}
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if r.From <= last.To {
			last.To = max(last.To, r.To)
			continue
		}
		out = append(out, r)
	}
	return out
}

// Count returns how many distinct IDs the ranges cover.
func Count(ranges []Range) int64 {
	var n int64
	for _, r := range Compact(ranges) {
		n += r.Len()
	}
	return n
}
