package puzzle

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Lines trims surrounding whitespace from text and splits it into lines.
// Carriage returns are dropped. Blank text yields no lines.
func Lines(text string) []string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r", ""))
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// RawLines splits text into lines keeping their spacing. Carriage returns
// are dropped, as are blank lines before the first and after the last
// non-blank line.
func RawLines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	blank := func(l string) bool { return strings.TrimSpace(l) == "" }
	for len(lines) > 0 && blank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && blank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil
	}
	return lines
}

// NonEmptyLines is Lines without the blank lines.
func NonEmptyLines(text string) []string {
	lines := Lines(text)
	out := lines[:0]
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// Sections splits text on blank lines. Each section is returned trimmed.
func Sections(text string) []string {
	var (
		out []string
		cur []string
	)
	for _, l := range Lines(text) {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				out = append(out, strings.Join(cur, "\n"))
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, strings.Join(cur, "\n"))
	}
	return out
}

// Sum adds nums; the sum of nothing is 0.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product multiplies nums; the product of nothing is 1.
func Product[T Number](nums ...T) T {
	prod := T(1)
	for _, v := range nums {
		prod *= v
	}
	return prod
}
