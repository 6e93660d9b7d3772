// Command aoc solves the Advent of Code 2025 puzzles of this module.
//
// Usage:
//
//	aoc run 8                      # reads <input_dir>/day8.txt
//	aoc run 8 --input sample.txt
//	aoc run 1 4 9
//	aoc all
//	aoc list
//
// Configuration comes from flags, AOC_* environment variables (AOC_INPUT_DIR,
// AOC_JUNCTION_BUDGET, ...) and an optional aoc.yaml, in that order.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plan-systems/klog"
)

func main() {
	fset := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")

	cmd := newRootCommand(fset)
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "aoc:", err)
	}

	klog.Flush()
	os.Exit(exitCode(err))
}
