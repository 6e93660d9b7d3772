// Package dial simulates the safe dial: a ring of 100 positions (0–99)
// turned left or right by a number of clicks.
//
// Two counts are of interest: how many rotations come to rest on 0, and how
// many times the dial points at 0 at all, including while passing it.
//
// Complexity: Rotate is O(1) regardless of the click count.
package dial
