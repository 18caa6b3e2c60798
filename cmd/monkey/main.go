// Command monkey is the entry point for the monkey interpreter. It wraps
// the lexer/parser/evaluator pipeline in a Cobra command tree: a bare
// invocation starts the REPL, "monkey run <file>" executes a script, and
// "--mode" picks between token, parse-tree, and evaluated output on either
// surface.
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/monkey/repl"
	"github.com/akashmaji946/monkey/run"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	redColor = color.New(color.FgRed)
	mode     string
	watch    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "monkey",
		Short:   "An interpreter for the monkey language",
		Version: "1.0.0",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&mode, "mode", "m", string(repl.ModeEval),
		"output mode: l (tokens), p (parse tree), e (evaluate)")

	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Execute a monkey source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			m := repl.Mode(mode)

			if watch {
				return run.Watch(cmd.OutOrStdout(), path, m)
			}
			return run.File(cmd.OutOrStdout(), path, m)
		},
	}

	runCmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-run the file whenever it changes")
	return runCmd
}

func runRepl(cmd *cobra.Command) error {
	m := repl.Mode(mode)
	if m != repl.ModeLex && m != repl.ModeParse && m != repl.ModeEval {
		return fmt.Errorf("unknown mode %q: want l, p, or e", mode)
	}

	session := repl.New(m)
	session.Start(cmd.OutOrStdout())
	return nil
}
