// Package repl implements the Read-Eval-Print Loop for Libra.
//
// The REPL provides an interactive environment where users can enter
// Libra code line by line, see immediate results, navigate command
// history and receive colored feedback. Adapted from the teacher's own
// repl package: github.com/chzyer/readline for line editing/history,
// github.com/fatih/color for colored output — rewired onto Libra's own
// lexer/parser/interpreter pipeline instead of GoMix's.
/*
File    : libra/repl/repl.go
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/libra/interpreter"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl encapsulates the configuration needed to run an interactive
// session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Libra!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop. One Interpreter is shared across the
// whole session, so variables and functions defined on one line remain
// visible on the next — the session behaves like a single running
// program, the same global-scope guarantee exec gives a script.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	it := interpreter.NewInterpreter()
	it.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeLine(writer, line, it)
	}
}

// executeLine lexes, parses and evaluates one line against the shared
// interpreter, printing the result or a colorized traceback.
func (r *Repl) executeLine(writer io.Writer, line string, it *interpreter.Interpreter) {
	result, rerr := it.Run("<stdin>", line)
	if rerr != nil {
		redColor.Fprintf(writer, "%s\n", rerr.Error())
		return
	}
	if result != nil {
		yellowColor.Fprintf(writer, "%s\n", result.ToDisplay())
	}
}
