package tiles

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
)

var tileLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Comma", Pattern: `,`},
})

// tileRecord is the grammar of one input line.
type tileRecord struct {
	X puzzle.Decimal `parser:"@Int \",\""`
	Y puzzle.Decimal `parser:"@Int"`
}

var tileParser = participle.MustBuild[tileRecord](participle.Lexer(tileLexer))

// ParseTile parses "x,y" with both coordinates in [0, MaxCoordinate].
func ParseTile(line string) (Point, error) {
	rec, err := tileParser.ParseString("", strings.TrimSpace(line))
	if err != nil {
		return Point{}, errors.Wrapf(ErrMalformedTile, "%q: %v", line, err)
	}
	if rec.X > MaxCoordinate || rec.Y > MaxCoordinate {
		return Point{}, errors.Wrapf(ErrMalformedTile, "%q: coordinate above %d", line, MaxCoordinate)
	}
	return Point{X: int64(rec.X), Y: int64(rec.Y)}, nil
}

// ParseTiles parses one tile per line and requires at least two.
func ParseTiles(text string) ([]Point, error) {
	lines := puzzle.Lines(text)
	tiles := make([]Point, 0, len(lines))
	for i, line := range lines {
		p, err := ParseTile(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		tiles = append(tiles, p)
	}
	if len(tiles) < 2 {
		return nil, errors.Wrapf(ErrTooFewTiles, "got %d", len(tiles))
	}
	return tiles, nil
}
