package tiles

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Sentinel errors for tiles operations.
var (
	// ErrMalformedTile indicates a record that is not "x,y" with non-negative integers.
	ErrMalformedTile = errors.Wrap(puzzle.ErrParse, "tiles: malformed tile")
	// ErrTooFewTiles indicates fewer than two red tiles.
	ErrTooFewTiles = errors.Wrap(puzzle.ErrPrecondition, "tiles: at least 2 tiles required")
	// ErrNotRectilinear indicates consecutive tiles that share neither row nor column, or coincide.
	ErrNotRectilinear = errors.Wrap(puzzle.ErrPrecondition, "tiles: loop is not rectilinear")
	// ErrNoEnclosed indicates that no rectangle lies inside the loop.
	ErrNoEnclosed = errors.Wrap(puzzle.ErrInvariant, "tiles: no enclosed rectangle")
	// ErrUnknownCoordinate indicates a coordinate absent from a CompressionMap.
	ErrUnknownCoordinate = errors.Wrap(puzzle.ErrPrecondition, "tiles: coordinate not in compression map")
)

// MaxCoordinate is the largest accepted tile coordinate; areas then stay
// below 2⁶¹.
const MaxCoordinate = 1 << 30

// Point is a tile position: X is the column, Y the row.
type Point struct {
	X, Y int64
}

// String renders p in its input form.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Rectangle is the axis-aligned rectangle with opposite corners A and B.
type Rectangle struct {
	A, B Point
}

// Area counts the tiles of r, borders included: (|dx|+1)·(|dy|+1).
func (r Rectangle) Area() int64 {
	return (abs(r.A.X-r.B.X) + 1) * (abs(r.A.Y-r.B.Y) + 1)
}

// Min returns the corner with the smallest coordinates.
func (r Rectangle) Min() Point {
	return Point{X: min(r.A.X, r.B.X), Y: min(r.A.Y, r.B.Y)}
}

// Max returns the corner with the largest coordinates.
func (r Rectangle) Max() Point {
	return Point{X: max(r.A.X, r.B.X), Y: max(r.A.Y, r.B.Y)}
}

// Edge is one straight side of the loop, from A to B.
type Edge struct {
	A, B Point
}

// Vertical reports whether e runs along a column.
func (e Edge) Vertical() bool {
	return e.A.X == e.B.X
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
