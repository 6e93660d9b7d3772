// Package freshness decides which ingredients in stock are fresh.
//
// The inventory lists inclusive ranges of fresh ingredient IDs, a blank
// line, then the IDs in stock. Ranges may overlap. Compact merges them into
// a sorted, non-overlapping list; Index stores that list in a red-black tree
// keyed by range start, so a lookup is one floor search.
//
// Complexity:
//
//   - Compact:  O(r log r).
//   - NewIndex: O(r log r).
//   - IsFresh:  O(log r).
package freshness
