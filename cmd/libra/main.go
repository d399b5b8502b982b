// Command libra is the Libra interpreter's entrypoint: `libra run <file>`
// executes a script and `libra repl` starts the interactive shell.
// Built on github.com/spf13/cobra, the same CLI library the rest of the
// pack reaches for, in place of a hand-rolled os.Args switch.
/*
File    : libra/cmd/libra/main.go
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/libra/interpreter"
	"github.com/akashmaji946/libra/repl"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	version = "0.1.0"
	author  = "akashmaji946"
	license = "MIT"
	banner  = `
  _     ___ ____  ____   _
 | |   |_ _| __ )|  _ \ / \
 | |    | ||  _ \| |_) / _ \
 | |___ | || |_) |  _ / ___ \
 |_____|___|____/|_| /_/   \_\
`
	line   = "------------------------------------------------------------"
	prompt = "libra >>> "
)

func main() {
	var noColor bool

	root := &cobra.Command{
		Use:   "libra",
		Short: "Libra is a small dynamically-typed scripting language interpreter",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	runCmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Run a Libra script file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0])
		},
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive Libra shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			repl.NewRepl(banner, version, author, line, license, prompt).Start(os.Stdin, os.Stdout)
			return nil
		},
	}

	root.AddCommand(runCmd, replCmd)

	if err := root.Execute(); err != nil {
		os.Exit(2)
	}
}

// runFile loads and evaluates one script, printing its final result list
// and exiting non-zero on a lex/parse/runtime error.
func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "libra: %v\n", err)
		os.Exit(1)
	}

	it := interpreter.NewInterpreter()
	result, rerr := it.Run(path, string(source))
	if rerr != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, rerr.Error())
		os.Exit(1)
	}
	if result != nil {
		fmt.Println(result.ToDisplay())
	}
	return nil
}
