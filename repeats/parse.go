package repeats

import (
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

// rangeRecord is the grammar of one comma-separated entry.
type rangeRecord struct {
	From puzzle.Decimal `parser:"@Int \"-\""`
	To   puzzle.Decimal `parser:"@Int"`
}

var rangeParser = participle.MustBuild[rangeRecord](participle.Lexer(rangeLexer))

// ParseRange parses "<from>-<to>".
func ParseRange(s string) (Range, error) {
	rec, err := rangeParser.ParseString("", strings.TrimSpace(s))
	if err != nil {
		return Range{}, errors.Wrapf(ErrMalformedRange, "%q: %v", s, err)
	}
	r := Range{From: int64(rec.From), To: int64(rec.To)}
	if r.From > r.To {
		return Range{}, errors.Wrapf(ErrInvertedRange, "%s", r)
	}
	return r, nil
}

// ParseRanges parses comma-separated ranges. Empty entries are skipped, so
// a trailing comma or newline is harmless.
func ParseRanges(text string) ([]Range, error) {
	var out []Range
	for i, part := range strings.Split(strings.TrimSpace(text), ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		r, err := ParseRange(part)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %d", i+1)
		}
		out = append(out, r)
	}
	return out, nil
}
