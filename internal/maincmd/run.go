package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/loxgo/lang/ast"
	"github.com/mna/loxgo/lang/interpreter"
	"github.com/mna/loxgo/lang/parser"
	"github.com/mna/loxgo/lang/report"
	"github.com/mna/loxgo/lang/resolver"
	"github.com/mna/loxgo/lang/scanner"
)

// runFile executes a single Lox source file start to finish: scan, parse,
// resolve, interpret. Scanning and parsing both always run; resolution is
// skipped if either reported an error, and interpretation is skipped if any
// static error was reported.
// When printAST is set, the file is scanned and parsed only, and the
// resulting statement tree is dumped to stdout via ast.Printer instead of
// being resolved and run.
func (c *Cmd) runFile(ctx context.Context, stdio mainer.Stdio, path string, printAST bool) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s: %s\n", binName, err)
		return exitUsage
	}

	var reporter report.Reporter
	toks := scanner.New(string(src), &reporter).ScanTokens()
	stmts := parser.Parse(toks, &reporter)

	if printAST {
		if !reporter.HadStaticError() {
			(&ast.Printer{Output: stdio.Stdout}).Print(stmts)
		}
		reporter.SortStaticErrors()
		reporter.PrintStaticErrors(stdio.Stderr)
		return reporter.ExitCode()
	}

	if !reporter.HadStaticError() {
		locals := resolver.New(&reporter).Resolve(stmts)
		if !reporter.HadStaticError() {
			in := interpreter.New(stdio.Stdout)
			if err := in.Interpret(stmts, locals); err != nil {
				if rerr, ok := err.(*report.RuntimeError); ok {
					fmt.Fprintln(stdio.Stderr, rerr.Error())
					reporter.RuntimeError(rerr)
				} else {
					fmt.Fprintln(stdio.Stderr, err)
					return exitFailure
				}
			}
		}
	}

	reporter.SortStaticErrors()
	reporter.PrintStaticErrors(stdio.Stderr)
	return reporter.ExitCode()
}
