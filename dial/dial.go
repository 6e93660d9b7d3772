package dial

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
)

var turnLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Dir", Pattern: `[LR]`},
	{Name: "Int", Pattern: `[0-9]+`},
})

// turnRecord is the grammar of one input line.
type turnRecord struct {
	Dir    string         `parser:"@Dir"`
	Clicks puzzle.Decimal `parser:"@Int"`
}

var turnParser = participle.MustBuild[turnRecord](participle.Lexer(turnLexer))

// ParseTurn parses "L<n>" or "R<n>" with n a non-negative decimal count.
func ParseTurn(line string) (Turn, error) {
	rec, err := turnParser.ParseString("", strings.TrimSpace(line))
	if err != nil {
		return Turn{}, errors.Wrapf(ErrMalformedTurn, "%q: %v", line, err)
	}
	t := Turn{Dir: Right, Clicks: int(rec.Clicks)}
	if rec.Dir == "L" {
		t.Dir = Left
	}
	return t, nil
}

// ParseTurns parses one turn per non-blank line.
func ParseTurns(text string) ([]Turn, error) {
	lines := puzzle.NonEmptyLines(text)
	turns := make([]Turn, 0, len(lines))
	for i, line := range lines {
		t, err := ParseTurn(line)
		if err != nil {
			return nil, errors.Wrapf(err, "turn %d", i+1)
		}
		turns = append(turns, t)
	}
	return turns, nil
}

// Rotate applies t to a dial at pos and returns the new position and the
// number of clicks that left the dial pointing at 0.
//
// Right: every pass from 99 to 0 counts.
// Left: every pass from 0 to 99 counts, except leaving a start of 0, and
// coming to rest on 0 counts once more.
func Rotate(pos int, t Turn) (newPos, zeroes int) {
	if t.Dir == Right {
		end := pos + t.Clicks
		return end % Size, end / Size
	}

	end := pos - t.Clicks
	if end < 0 {
		// wraps needed to lift end back into [0, Size)
		zeroes = (-end + Size - 1) / Size
	}
	newPos = ((end % Size) + Size) % Size
	if pos == 0 {
		zeroes--
	}
	if newPos == 0 {
		zeroes++
	}
	return newPos, zeroes
}

// Run turns a dial starting at start through turns.
// It returns how many turns ended on 0 and how many clicks landed on 0.
func Run(start int, turns []Turn) (stops, total int) {
	pos := start
	for _, t := range turns {
		var z int
		pos, z = Rotate(pos, t)
		total += z
		if pos == 0 {
			stops++
		}
	}
	return stops, total
}
