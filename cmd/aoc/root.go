package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInputWithManyDays indicates --input combined with more than one day.
var ErrInputWithManyDays = errors.New("aoc: --input needs exactly one day")

// newRootCommand builds the command tree. goFlags, if not nil, is exposed
// through the persistent flags (klog's -v and friends).
func newRootCommand(goFlags *flag.FlagSet) *cobra.Command {
	v := newViper()
	var cfgFile string

	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Solve Advent of Code 2025 puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return readConfig(v, cfgFile)
		},
	}
	addGlobalFlags(root.PersistentFlags(), v, &cfgFile, goFlags)

	root.AddCommand(newRunCommand(v), newAllCommand(v), newListCommand())
	return root
}

// addGlobalFlags registers the flags shared by every subcommand and binds
// them to v.
func addGlobalFlags(fs *pflag.FlagSet, v *viper.Viper, cfgFile *string, goFlags *flag.FlagSet) {
	fs.StringVar(cfgFile, "config", "", "config file (default ./aoc.yaml)")
	fs.String("input-dir", "", "directory holding dayN.txt files")
	v.BindPFlag(keyInputDir, fs.Lookup("input-dir"))
	if goFlags != nil {
		fs.AddGoFlagSet(goFlags)
	}
}

func newRunCommand(v *viper.Viper) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "run <day>...",
		Short: "Solve the given days",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if input != "" && len(args) > 1 {
				return ErrInputWithManyDays
			}
			selected := make([]day, 0, len(args))
			for _, a := range args {
				n, err := strconv.Atoi(a)
				if err != nil {
					return errors.Wrapf(ErrUnknownDay, "%q", a)
				}
				d, err := lookup(n)
				if err != nil {
					return err
				}
				selected = append(selected, d)
			}

			out := cmd.OutOrStdout()
			for _, d := range selected {
				path := input
				if path == "" {
					path = inputPath(v, d)
				}
				if len(selected) > 1 {
					printHeader(out, d)
				}
				if err := solve(out, v, d, path); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "input file (one day only)")
	return cmd
}

func newAllCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Solve every day whose input file exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, d := range days() {
				path := inputPath(v, d)
				if _, err := os.Stat(path); err != nil {
					klog.V(1).Infof("aoc: skipping day %d: %v", d.Number, err)
					continue
				}
				printHeader(out, d)
				if err := solve(out, v, d, path); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, d := range days() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", d.Number, d.Title)
			}
			return nil
		},
	}
}

func inputPath(v *viper.Viper, d day) string {
	return filepath.Join(v.GetString(keyInputDir), fmt.Sprintf("day%d.txt", d.Number))
}

func printHeader(out io.Writer, d day) {
	fmt.Fprintf(out, "--- Day %d: %s ---\n", d.Number, d.Title)
}

// solve reads path, runs d and prints its answers.
func solve(out io.Writer, v *viper.Viper, d day, path string) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "day %d", d.Number)
	}
	klog.V(1).Infof("aoc: day %d from %s (%d bytes)", d.Number, path, len(text))

	answers, err := d.Solve(string(text), configFrom(v))
	if err != nil {
		return errors.Wrapf(err, "day %d", d.Number)
	}
	for _, a := range answers {
		fmt.Fprintln(out, a)
	}
	return nil
}
