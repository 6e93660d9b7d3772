package freshness

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
)

var rangeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Dash", Pattern: `-`},
})

// rangeRecord is the grammar of one range line.
type rangeRecord struct {
	From puzzle.Decimal `parser:"@Int \"-\""`
	To   puzzle.Decimal `parser:"@Int"`
}

var rangeParser = participle.MustBuild[rangeRecord](participle.Lexer(rangeLexer))

// ParseRange parses "<from>-<to>".
func ParseRange(line string) (Range, error) {
	rec, err := rangeParser.ParseString("", strings.TrimSpace(line))
	if err != nil {
		return Range{}, errors.Wrapf(ErrMalformedRange, "%q: %v", line, err)
	}
	r := Range{From: int64(rec.From), To: int64(rec.To)}
	if r.From > r.To {
		return Range{}, errors.Wrapf(ErrInvertedRange, "%s", r)
	}
	return r, nil
}

// Parse reads the range section and the stock section.
func Parse(text string) (*Inventory, error) {
	sections := puzzle.Sections(text)
	if len(sections) != 2 {
		return nil, errors.Wrapf(ErrSectionCount, "got %d", len(sections))
	}

	inv := &Inventory{}
	for i, line := range puzzle.Lines(sections[0]) {
		r, err := ParseRange(line)
		if err != nil {
			return nil, errors.Wrapf(err, "range %d", i+1)
		}
		inv.Fresh = append(inv.Fresh, r)
	}
	for i, line := range puzzle.Lines(sections[1]) {
		id, err := strconv.ParseUint(strings.TrimSpace(line), 10, 63)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedID, "stock %d: %q", i+1, line)
		}
		inv.Stock = append(inv.Stock, int64(id))
	}

	return inv, nil
}
