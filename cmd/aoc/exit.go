package main

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Process exit codes.
const (
	exitOK           = 0
	exitFailure      = 1
	exitParse        = 2
	exitPrecondition = 3
	exitInvariant    = 4
)

// exitCode maps err to the process exit code by its error category.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, puzzle.ErrParse):
		return exitParse
	case errors.Is(err, puzzle.ErrPrecondition):
		return exitPrecondition
	case errors.Is(err, puzzle.ErrInvariant):
		return exitInvariant
	default:
		return exitFailure
	}
}
