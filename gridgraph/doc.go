// Package gridgraph treats a rectangular grid of integer cells as a graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Neighbor queries under 4- or 8-connectivity (CountNeighbors).
//   - Flood fill from a cell over a caller-chosen passable predicate (Flood).
//   - Connected components ("islands") of cells with value ≥ LandThreshold.
//
// Why:
//
//   - Occupancy maps: count occupied neighbors and peel cells away (paperroll).
//   - Compressed floor plans: mark everything reachable from outside a loop (tiles).
//
// Complexity:
//
//   - CountNeighbors:      O(d), d = 4 or 8.
//   - Flood:               O(W×H×d), Memory: O(W×H).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
package gridgraph
