// Package junction connects junction boxes hanging in 3-D space into
// circuits, closest pairs first.
//
// What & Why
//
//   - Boxes are parsed once into an immutable Store; a box's identity is its
//     0-based position in the input and never changes.
//   - A DistanceIndex materializes the complete weighted graph over the
//     boxes: every unordered pair (A < B) exactly once, n·(n−1)/2 entries,
//     sorted ascending by Euclidean distance. Equal distances are ordered by
//     A, then B, so runs are reproducible.
//   - A Connector folds pairs into a partition of the boxes. Every box starts
//     in its own singleton Circuit; a pair whose boxes sit in different
//     circuits merges them, a pair inside one circuit only records the link.
//
// Policies
//
//   - LargestCircuitsProduct (bounded budget): apply exactly the first K
//     pairs, then multiply the sizes of the T largest circuits (K=1000, T=3
//     by default). Fewer than T circuits is a precondition failure.
//   - FinalConnection (full convergence): apply pairs in order and stop at the
//     first one that leaves a single circuit. Running out of pairs first is
//     an invariant violation: a complete graph always connects.
//
// Each policy runs on its own Connector; the Store and the DistanceIndex are
// read-only and shared.
//
// Complexity
//
//   - NewDistanceIndex: O(n²) pairs, O(n² log n) to sort, O(n²) memory.
//   - Connector.ApplyEdge: O(α(n)) to resolve circuits plus O(min(|C1|,|C2|)
//     + links) to merge the smaller circuit into the larger one.
//
// Errors
//
//   - ErrMalformedBox        (puzzle.ErrParse)
//   - ErrTooFewBoxes         (puzzle.ErrPrecondition)
//   - ErrIdentityOutOfRange  (puzzle.ErrPrecondition)
//   - ErrEmptyMerge          (puzzle.ErrPrecondition)
//   - ErrInvalidOption       (puzzle.ErrPrecondition)
//   - ErrTooFewCircuits      (puzzle.ErrPrecondition)
//   - ErrNotConverged        (puzzle.ErrInvariant)
package junction
