// Package repeats finds invalid product IDs: numbers whose decimal digits
// are one digit sequence written several times, such as 55, 6464 or
// 123123123.
//
// DoubleRepeats keeps sequences written exactly twice; AllRepeats keeps any
// count of two or more. Sequences never start with 0, so 0101 is not a
// repeat.
//
// Both walk sequence lengths and repeat counts, and compute the matching
// sequence interval directly: a number made of seq repeated t times with
// sequence length L equals seq·(1 + 10^L + … + 10^(L·(t-1))).
package repeats
