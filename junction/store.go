package junction

import (
	"iter"
	"math"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Box is a junction box position. Coordinates lie in [0, MaxCoordinate].
type Box struct {
	X, Y, Z int64
}

// SquaredDistance returns Δx² + Δy² + Δz².
func (b Box) SquaredDistance(o Box) int64 {
	dx, dy, dz := b.X-o.X, b.Y-o.Y, b.Z-o.Z
	return dx*dx + dy*dy + dz*dz
}

// Distance returns the Euclidean distance between b and o.
func (b Box) Distance(o Box) float64 {
	return math.Sqrt(float64(b.SquaredDistance(o)))
}

// boxLexer has no whitespace rule: "1, 2,3" is not a box.
var boxLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Comma", Pattern: `,`},
})

// boxRecord is the grammar of one input line.
type boxRecord struct {
	X puzzle.Decimal `parser:"@Int \",\""`
	Y puzzle.Decimal `parser:"@Int \",\""`
	Z puzzle.Decimal `parser:"@Int"`
}

var boxParser = participle.MustBuild[boxRecord](participle.Lexer(boxLexer))

// ParseBox parses "x,y,z". Signs, fractions, inner spaces, missing or extra
// fields and coordinates above MaxCoordinate are rejected with
// ErrMalformedBox; no coordinate is ever defaulted.
func ParseBox(line string) (Box, error) {
	rec, err := boxParser.ParseString("", strings.TrimSpace(line))
	if err != nil {
		return Box{}, errors.Wrapf(ErrMalformedBox, "%q: %v", line, err)
	}
	b := Box{X: int64(rec.X), Y: int64(rec.Y), Z: int64(rec.Z)}
	if !b.valid() {
		return Box{}, errors.Wrapf(ErrMalformedBox, "%q: coordinate above %d", line, MaxCoordinate)
	}
	return b, nil
}

func (b Box) valid() bool {
	for _, v := range [...]int64{b.X, b.Y, b.Z} {
		if v < 0 || v > MaxCoordinate {
			return false
		}
	}
	return true
}

// Store holds the boxes in input order. It is immutable once built.
type Store struct {
	boxes []Box
}

// NewStore copies boxes into a Store.
// Returns ErrTooFewBoxes if fewer than two boxes are given and
// ErrMalformedBox for a coordinate outside [0, MaxCoordinate].
func NewStore(boxes []Box) (*Store, error) {
	if len(boxes) < 2 {
		return nil, errors.Wrapf(ErrTooFewBoxes, "got %d", len(boxes))
	}
	for id, b := range boxes {
		if !b.valid() {
			return nil, errors.Wrapf(ErrMalformedBox, "box %d (%d,%d,%d) outside [0, %d]", id, b.X, b.Y, b.Z, MaxCoordinate)
		}
	}
	s := &Store{boxes: make([]Box, len(boxes))}
	copy(s.boxes, boxes)

	return s, nil
}

// ParseStore parses one box per line. A bad record fails the whole parse,
// naming its 1-based line number.
func ParseStore(text string) (*Store, error) {
	lines := puzzle.Lines(text)
	boxes := make([]Box, 0, len(lines))
	for i, line := range lines {
		b, err := ParseBox(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		boxes = append(boxes, b)
	}

	return NewStore(boxes)
}

// Len returns the number of boxes.
func (s *Store) Len() int {
	return len(s.boxes)
}

// At returns the box with the given identity.
func (s *Store) At(id int) (Box, error) {
	if id < 0 || id >= len(s.boxes) {
		return Box{}, errors.Wrapf(ErrIdentityOutOfRange, "id %d, %d boxes", id, len(s.boxes))
	}
	return s.boxes[id], nil
}

// IDs yields every identity in creation order.
func (s *Store) IDs() iter.Seq[int] {
	return func(yield func(int) bool) {
		for id := range s.boxes {
			if !yield(id) {
				return
			}
		}
	}
}
