package tiles

import (
	"sort"

	"github.com/pkg/errors"
)

// CompressionMap translates between tile coordinates and their ranks among
// the distinct coordinates of the same axis.
type CompressionMap struct {
	toX, toY     map[int64]int64
	fromX, fromY []int64
}

// Compress replaces every coordinate of points by its rank among the
// distinct values of its axis, so the result spans [0, distinct) per axis
// and keeps every order relation of the input.
//
//	Compress([(7,1) (11,1) (11,7)]) == [(0,0) (1,0) (1,1)]
func Compress(points []Point) ([]Point, *CompressionMap) {
	m := &CompressionMap{
		fromX: distinct(points, func(p Point) int64 { return p.X }),
		fromY: distinct(points, func(p Point) int64 { return p.Y }),
	}
	m.toX, m.toY = ranks(m.fromX), ranks(m.fromY)

	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: m.toX[p.X], Y: m.toY[p.Y]}
	}
	return out, m
}

// Columns returns the distinct X coordinates in ascending order.
func (m *CompressionMap) Columns() []int64 {
	return append([]int64(nil), m.fromX...)
}

// Rows returns the distinct Y coordinates in ascending order.
func (m *CompressionMap) Rows() []int64 {
	return append([]int64(nil), m.fromY...)
}

// Compress maps a tile coordinate to its ranks.
// Returns ErrUnknownCoordinate if either coordinate was never seen.
func (m *CompressionMap) Compress(p Point) (Point, error) {
	x, okX := m.toX[p.X]
	y, okY := m.toY[p.Y]
	if !okX || !okY {
		return Point{}, errors.Wrapf(ErrUnknownCoordinate, "compress %s", p)
	}
	return Point{X: x, Y: y}, nil
}

// Decompress maps ranks back to the tile coordinate.
// Returns ErrUnknownCoordinate for ranks out of range.
func (m *CompressionMap) Decompress(p Point) (Point, error) {
	if p.X < 0 || p.X >= int64(len(m.fromX)) || p.Y < 0 || p.Y >= int64(len(m.fromY)) {
		return Point{}, errors.Wrapf(ErrUnknownCoordinate, "decompress %s", p)
	}
	return Point{X: m.fromX[p.X], Y: m.fromY[p.Y]}, nil
}

func distinct(points []Point, coord func(Point) int64) []int64 {
	seen := make(map[int64]bool, len(points))
	var out []int64
	for _, p := range points {
		if v := coord(p); !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func ranks(sorted []int64) map[int64]int64 {
	out := make(map[int64]int64, len(sorted))
	for i, v := range sorted {
		out[v] = int64(i)
	}
	return out
}
