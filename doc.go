// Package aoc2025 is a set of Advent of Code 2025 solvers built around an
// incremental-connectivity core: junction boxes joined closest pair first
// into circuits.
//
// What is inside?
//
//   - junction   day 8: box store, pairwise distance index, circuits and
//     the connector with its bounded-budget and until-connected policies
//   - gridgraph  2-D grid with Conn4/Conn8 neighbourhoods, BFS components
//     and flood fill, shared by days 4 and 9
//   - puzzle     answer and config types, error categories, input helpers
//   - one package per remaining day
//
// Layout:
//
//	dial/       day 1: rotating dial, zero crossings
//	repeats/    day 2: invalid IDs made of repeated digit blocks
//	joltage/    day 3: largest k-digit subsequence per bank
//	paperroll/  day 4: removable paper rolls on a Conn8 grid
//	freshness/  day 5: merged ID ranges and an ordered range index
//	worksheet/  day 6: row-wise and column-wise math problems
//	manifold/   day 7: splitting beams and timeline counts
//	junction/   day 8: circuits of junction boxes
//	tiles/      day 9: largest rectangles inside a rectilinear loop
//	cmd/aoc/    command line: aoc run <day>..., aoc all, aoc list
//
// Every day exposes Solve(text, cfg) ([]puzzle.Answer, error). Failures
// wrap puzzle.ErrParse, puzzle.ErrPrecondition or puzzle.ErrInvariant, so
// callers classify them with errors.Is.
//
//	go install github.com/katalvlaran/aoc2025/cmd/aoc@latest
package aoc2025
