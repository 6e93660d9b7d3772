// Package puzzle holds the contracts shared by every daily solver in aoc2025:
// the error taxonomy, the Answer type printed by the CLI, the run Config and
// a handful of input and numeric helpers.
//
// Error taxonomy:
//
//   - ErrParse        – a record does not match its expected shape.
//   - ErrPrecondition – input is well-formed but unusable (too few records,
//     identity out of range, too few circuits to rank…).
//   - ErrInvariant    – a computation ended in a state that valid input can
//     never produce (e.g. a complete graph that never connects).
//
// Every package declares its own sentinels derived from one of these
// categories, so callers can either match the precise sentinel or classify
// any failure with errors.Is(err, puzzle.ErrPrecondition).
//
// Solvers are pure functions of the input text and Config; they never read
// files or print. Reading inputs and printing answers is the job of cmd/aoc.
package puzzle
