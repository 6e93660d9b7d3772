package tiles

import (
	"sort"
	"strings"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/aoc2025/gridgraph"
)

// Compressed cell states.
const (
	open     = 0 // not yet known to be outside
	wall     = 1 // on the loop
	exterior = 2 // reachable from the padding border
)

// Polygon is the closed rectilinear loop through a list of red tiles,
// together with a compressed map of what lies inside it.
//
// Compressed axis layout for n distinct coordinates c₀ < … < cₙ₋₁:
// cell 0 is padding before c₀, cell 2k+1 is cₖ itself, cell 2k+2 is the
// open gap (cₖ, cₖ₊₁), and cell 2n is padding after cₙ₋₁.
type Polygon struct {
	tiles []Point
	cmap  *CompressionMap
	grid  *gridgraph.GridGraph
	// outer[y][x] is the number of outside tiles in compressed cells [0,x)×[0,y).
	outer [][]int64
}

// NewPolygon builds the loop through tiles, closing back to the first.
//
// Steps:
//  1. Validate the edges (ErrTooFewTiles, ErrNotRectilinear).
//  2. Compress both axes with a gap cell between consecutive coordinates.
//  3. Draw every edge as wall cells.
//  4. Flood the open cells from the padding corner; they are the outside.
//  5. Weight each outside cell by the tiles it covers and prefix-sum them.
func NewPolygon(tiles []Point) (*Polygon, error) {
	edges, err := Edges(tiles)
	if err != nil {
		return nil, err
	}
	_, cmap := Compress(tiles)
	w, h := 2*len(cmap.fromX)+1, 2*len(cmap.fromY)+1

	values := make([][]int, h)
	for y := range values {
		values[y] = make([]int, w)
	}
	for _, e := range edges {
		ax, ay := cellOf(e.A.X, cmap.fromX), cellOf(e.A.Y, cmap.fromY)
		bx, by := cellOf(e.B.X, cmap.fromX), cellOf(e.B.Y, cmap.fromY)
		for y := min(ay, by); y <= max(ay, by); y++ {
			for x := min(ax, bx); x <= max(ax, bx); x++ {
				values[y][x] = wall
			}
		}
	}

	grid, err := gridgraph.From2D(values, gridgraph.Conn4)
	if err != nil {
		return nil, err
	}
	outside, err := grid.Flood(0, 0, func(v int) bool { return v == open })
	if err != nil {
		return nil, err
	}
	for _, i := range outside {
		x, y := grid.Coordinate(i)
		grid.CellValues[y][x] = exterior
	}
	klog.V(2).Infof("tiles: %d tiles compressed to %dx%d cells, %d outside", len(tiles), w, h, len(outside))

	p := &Polygon{
		tiles: append([]Point(nil), tiles...),
		cmap:  cmap,
		grid:  grid,
		outer: make([][]int64, h+1),
	}
	p.outer[0] = make([]int64, w+1)
	for y := 0; y < h; y++ {
		p.outer[y+1] = make([]int64, w+1)
		for x := 0; x < w; x++ {
			var bad int64
			if grid.CellValues[y][x] == exterior {
				bad = span(x, cmap.fromX) * span(y, cmap.fromY)
			}
			p.outer[y+1][x+1] = p.outer[y][x+1] + p.outer[y+1][x] - p.outer[y][x] + bad
		}
	}
	return p, nil
}

// Tiles returns the red tiles in loop order.
func (p *Polygon) Tiles() []Point {
	return append([]Point(nil), p.tiles...)
}

// Contains reports whether tile q is on the loop or inside it.
func (p *Polygon) Contains(q Point) bool {
	x, y := cellOf(q.X, p.cmap.fromX), cellOf(q.Y, p.cmap.fromY)
	return p.grid.CellValues[y][x] != exterior
}

// Encloses reports whether every tile of the rectangle with opposite
// corners a and b is on the loop or inside it.
func (p *Polygon) Encloses(a, b Point) bool {
	r := Rectangle{A: a, B: b}
	lo, hi := r.Min(), r.Max()
	x0, y0 := cellOf(lo.X, p.cmap.fromX), cellOf(lo.Y, p.cmap.fromY)
	x1, y1 := cellOf(hi.X, p.cmap.fromX)+1, cellOf(hi.Y, p.cmap.fromY)+1

	return p.outer[y1][x1]-p.outer[y0][x1]-p.outer[y1][x0]+p.outer[y0][x0] == 0
}

// LargestEnclosedArea returns the largest rectangle with two red tiles as
// opposite corners that Encloses accepts.
// Returns ErrNoEnclosed if there is none.
func (p *Polygon) LargestEnclosedArea() (Rectangle, error) {
	var (
		best  Rectangle
		found bool
	)
	for _, r := range Rectangles(p.tiles) {
		if found && r.Area() <= best.Area() {
			continue
		}
		if p.Encloses(r.A, r.B) {
			best, found = r, true
		}
	}
	if !found {
		return Rectangle{}, ErrNoEnclosed
	}
	return best, nil
}

// Render draws the compressed grid: '#' for the loop, 'X' inside, '.' outside.
func (p *Polygon) Render() string {
	var b strings.Builder
	for y, row := range p.grid.CellValues {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, v := range row {
			switch v {
			case wall:
				b.WriteByte('#')
			case exterior:
				b.WriteByte('.')
			default:
				b.WriteByte('X')
			}
		}
	}
	return b.String()
}

// cellOf returns the compressed cell of coordinate v on an axis with the
// given sorted distinct coordinates.
func cellOf(v int64, axis []int64) int {
	k := sort.Search(len(axis), func(i int) bool { return axis[i] >= v })
	if k < len(axis) && axis[k] == v {
		return 2*k + 1
	}
	return 2 * k
}

// span returns how many integer coordinates compressed cell i covers.
// Padding cells count 1; they never lie inside a tile rectangle.
func span(i int, axis []int64) int64 {
	switch {
	case i%2 == 1:
		return 1
	case i == 0 || i == 2*len(axis):
		return 1
	default:
		k := i/2 - 1
		return axis[k+1] - axis[k] - 1
	}
}
