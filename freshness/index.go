package freshness

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// Index answers freshness lookups over a set of ranges.
type Index struct {
	tree *redblacktree.Tree // start -> end, compacted ranges
}

// NewIndex compacts ranges and indexes them by start.
func NewIndex(ranges []Range) *Index {
	tree := redblacktree.NewWith(utils.Int64Comparator)
	for _, r := range Compact(ranges) {
		tree.Put(r.From, r.To)
	}
	return &Index{tree: tree}
}

// IsFresh reports whether id lies in any range: the range with the largest
// start not above id must also end at or after id.
func (ix *Index) IsFresh(id int64) bool {
	node, found := ix.tree.Floor(id)
	return found && id <= node.Value.(int64)
}

// Len returns the number of compacted ranges.
func (ix *Index) Len() int {
	return ix.tree.Size()
}

// Ranges returns the compacted ranges in ascending order.
func (ix *Index) Ranges() []Range {
	out := make([]Range, 0, ix.tree.Size())
	it := ix.tree.Iterator()
	for it.Next() {
		out = append(out, Range{From: it.Key().(int64), To: it.Value().(int64)})
	}
	return out
}

// Fresh returns the IDs of stock that are fresh, in stock order.
func (ix *Index) Fresh(stock []int64) []int64 {
	var out []int64
	for _, id := range stock {
		if ix.IsFresh(id) {
			out = append(out, id)
		}
	}
	return out
}
