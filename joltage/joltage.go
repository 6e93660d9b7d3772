package joltage

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// ParseBank parses a line of digits.
func ParseBank(line string) (Bank, error) {
	s := strings.TrimSpace(line)
	if s == "" {
		return nil, errors.Wrap(ErrMalformedBank, "empty line")
	}
	bank := make(Bank, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, errors.Wrapf(ErrMalformedBank, "%q at %d in %q", s[i], i+1, s)
		}
		bank[i] = int8(s[i] - '0')
	}
	return bank, nil
}

// ParseBanks parses one bank per non-blank line.
func ParseBanks(text string) ([]Bank, error) {
	lines := puzzle.NonEmptyLines(text)
	banks := make([]Bank, 0, len(lines))
	for i, line := range lines {
		b, err := ParseBank(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		banks = append(banks, b)
	}
	return banks, nil
}

// MaxJoltage returns the largest count-digit number formed by batteries of
// bank taken in order. count <= 0 yields 0.
//
// Steps:
//  1. For each remaining digit r = count … 1, the candidate window runs from
//     just past the previous pick to len(bank)-r, leaving r-1 batteries.
//  2. Pick the leftmost maximum of the window; a later equal digit would
//     only shrink the next window.
//  3. Append the digit to the result.
//
// Errors: ErrBankTooShort if len(bank) < count, ErrCountTooLarge if
// count > MaxCount.
func MaxJoltage(bank Bank, count int) (int64, error) {
	if count <= 0 {
		return 0, nil
	}
	if count > MaxCount {
		return 0, errors.Wrapf(ErrCountTooLarge, "%d > %d", count, MaxCount)
	}
	if len(bank) < count {
		return 0, errors.Wrapf(ErrBankTooShort, "%d batteries, need %d", len(bank), count)
	}

	var joltage int64
	start := 0
	for r := count; r > 0; r-- {
		best := start
		for i := start + 1; i <= len(bank)-r; i++ {
			if bank[i] > bank[best] {
				best = i
			}
		}
		joltage = joltage*10 + int64(bank[best])
		start = best + 1
	}
	return joltage, nil
}

// TotalJoltage sums MaxJoltage over banks.
func TotalJoltage(banks []Bank, count int) (int64, error) {
	values := make([]int64, len(banks))
	for i, b := range banks {
		v, err := MaxJoltage(b, count)
		if err != nil {
			return 0, errors.Wrapf(err, "bank %d", i+1)
		}
		values[i] = v
	}
	return puzzle.Sum(values...), nil
}
