package tiles

import (
	"github.com/pkg/errors"
)

// Rectangles returns every rectangle with two distinct tiles as opposite
// corners, in index order.
func Rectangles(tiles []Point) []Rectangle {
	out := make([]Rectangle, 0, len(tiles)*(len(tiles)-1)/2)
	for i := range tiles {
		for j := i + 1; j < len(tiles); j++ {
			out = append(out, Rectangle{A: tiles[i], B: tiles[j]})
		}
	}
	return out
}

// LargestArea returns the largest rectangle spanned by two tiles.
// Returns ErrTooFewTiles for fewer than two tiles.
func LargestArea(tiles []Point) (Rectangle, error) {
	if len(tiles) < 2 {
		return Rectangle{}, ErrTooFewTiles
	}
	best := Rectangle{A: tiles[0], B: tiles[1]}
	for _, r := range Rectangles(tiles) {
		if r.Area() > best.Area() {
			best = r
		}
	}
	return best, nil
}

// Edges returns the sides of the loop through tiles, closing back to the
// first. Returns ErrNotRectilinear if two consecutive tiles coincide or
// share neither row nor column.
func Edges(tiles []Point) ([]Edge, error) {
	if len(tiles) < 2 {
		return nil, ErrTooFewTiles
	}
	edges := make([]Edge, len(tiles))
	for i, a := range tiles {
		b := tiles[(i+1)%len(tiles)]
		if a == b || (a.X != b.X && a.Y != b.Y) {
			return nil, notRectilinear(i, a, b)
		}
		edges[i] = Edge{A: a, B: b}
	}
	return edges, nil
}

func notRectilinear(i int, a, b Point) error {
	return errors.Wrapf(ErrNotRectilinear, "edge %d from %s to %s", i+1, a, b)
}
