// Package maincmd wires the CLI entry point: `lox [script]` runs a file,
// `lox` with no arguments starts the REPL. Cmd's SetArgs/SetFlags/Validate
// are driven by struct-tag flag parsing via mainer.Parser before Main
// dispatches to exactly one of two outcomes: file mode or REPL mode.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mna/mainer"
)

const binName = "lox"

var shortUsage = fmt.Sprintf("usage: %s [--ast] [script]\n", binName)

// Exit codes follow a sysexits-style convention: 64 for CLI misuse, 65 for
// a static (scan/parse/resolve) error, 70 for an uncaught runtime error, 0
// otherwise.
const (
	exitUsage   = 64
	exitData    = 65
	exitFailure = 70
)

// Cmd implements mainer's command contract: SetArgs/SetFlags/Validate are
// called by mainer.Parser before Main dispatches to the file or REPL path.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help     bool `flag:"h,help"`
	Version  bool `flag:"v,version"`
	PrintAST bool `flag:"ast"`

	args []string
}

func (c *Cmd) SetArgs(args []string)          { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) {}

// Validate enforces the CLI's usage contract: at most one positional
// argument (the script path).
func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) > 1 {
		return errors.New("too many arguments")
	}
	if c.PrintAST && len(c.args) != 1 {
		return errors.New("--ast requires a script argument")
	}
	return nil
}

// Main parses args, then either prints help/version or runs the
// interpreter in file mode (one argument) or REPL mode (no arguments).
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return exitUsage
	}

	switch {
	case c.Help:
		fmt.Fprintf(stdio.Stdout, "%s%s\nWith no arguments, starts an interactive REPL.\n"+
			"--ast prints the parsed syntax tree of script instead of running it.\n", shortUsage, binName)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)

	if len(c.args) == 1 {
		return mainer.ExitCode(c.runFile(ctx, stdio, c.args[0], c.PrintAST))
	}
	return mainer.ExitCode(c.runREPL(ctx, stdio))
}
