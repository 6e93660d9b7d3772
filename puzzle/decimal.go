package puzzle

import (
	"strconv"
	"strings"
)

// Decimal is an int64 captured by participle grammars from a base-10 token.
// Leading zeros are plain digits, never an octal or hex prefix.
type Decimal int64

// Capture implements participle.Capture.
func (d *Decimal) Capture(values []string) error {
	n, err := strconv.ParseInt(strings.Join(values, ""), 10, 64)
	if err != nil {
		return err
	}
	*d = Decimal(n)
	return nil
}
