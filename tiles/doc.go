// Package tiles finds the largest rectangles spanned by red tiles on a
// movie theater floor.
//
// Any two red tiles can be opposite corners of a rectangle; its area counts
// tiles, so both border rows and columns are included. Listed in order, the
// red tiles also trace a closed rectilinear loop (the last joins the first);
// the loop and everything it surrounds is green. LargestEnclosedArea keeps
// only rectangles made entirely of red or green tiles.
//
// The floor is far too large to rasterize. Polygon compresses it: every
// distinct tile coordinate gets a cell, and so does every gap between two
// consecutive coordinates. On that grid the loop is drawn, the outside is
// flooded from a padding border (gridgraph), and each outside cell is
// weighted by the number of real tiles it stands for. A 2-D prefix sum of
// those weights then tells in O(1) whether a rectangle touches the outside.
//
// Complexity: NewPolygon O(n²) for n red tiles; Contains O(log n);
// Encloses O(log n); LargestEnclosedArea O(n² log n).
package tiles
