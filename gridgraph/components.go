package gridgraph

// ConnectedComponents finds all contiguous regions ("islands") of land cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS order from its first cell in row-major order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	land := func(v int) bool { return v >= gg.LandThreshold }

	var comps [][]int
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !land(gg.CellValues[y][x]) || seen[gg.Index(x, y)] {
				continue
			}
			comps = append(comps, gg.bfs(gg.Index(x, y), land, seen))
		}
	}
	return comps
}

// Flood returns the indices of every cell reachable from (x,y) through
// cells whose value satisfies passable, (x,y) included, in BFS order.
// Returns nil if the start cell itself is not passable, and
// ErrOutOfBounds if (x,y) lies outside the grid.
//
// Time:   O(W·H·d).
// Memory: O(W·H).
func (gg *GridGraph) Flood(x, y int, passable func(v int) bool) ([]int, error) {
	if !gg.InBounds(x, y) {
		return nil, gg.outOfBounds(x, y)
	}
	if !passable(gg.CellValues[y][x]) {
		return nil, nil
	}
	seen := make([]bool, gg.Width*gg.Height)

	return gg.bfs(gg.Index(x, y), passable, seen), nil
}

// bfs collects the region of start, marking cells in seen.
//
// Steps:
//  1. Mark start and seed the queue.
//  2. Pop a cell; enqueue each unseen in-bounds neighbor satisfying ok.
//  3. Stop when the queue is drained; the queue is the region.
func (gg *GridGraph) bfs(start int, ok func(v int) bool, seen []bool) []int {
	seen[start] = true
	queue := []int{start}
	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) || !ok(gg.CellValues[vy][vx]) {
				continue
			}
			vi := gg.Index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return queue
}
