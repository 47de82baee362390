package maincmd

import (
	"context"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mna/mainer"

	"github.com/mna/loxgo/internal/replcfg"
	"github.com/mna/loxgo/lang/ast"
	"github.com/mna/loxgo/lang/interpreter"
	"github.com/mna/loxgo/lang/parser"
	"github.com/mna/loxgo/lang/report"
	"github.com/mna/loxgo/lang/resolver"
	"github.com/mna/loxgo/lang/scanner"
)

// runREPL runs an interactive read-eval-print loop. Unlike file mode, a
// line's static or runtime error never ends the session: the reporter is
// reset and the loop continues with the next line. The resolver and
// interpreter are each created once for the whole session (not per line) so
// closures and globals declared on one line remain valid on later lines.
func (c *Cmd) runREPL(ctx context.Context, stdio mainer.Stdio) int {
	cfg, err := replcfg.Load()
	if err != nil {
		errColor.Fprintf(stdio.Stderr, "%s\n", err)
		return exitFailure
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
		Stdin:           stdio.Stdin,
		Stdout:          stdio.Stdout,
		Stderr:          stdio.Stderr,
	})
	if err != nil {
		errColor.Fprintf(stdio.Stderr, "%s\n", err)
		return exitFailure
	}
	defer rl.Close()

	var reporter report.Reporter
	rv := resolver.New(&reporter)
	in := interpreter.New(stdio.Stdout)

	for {
		select {
		case <-ctx.Done():
			return 0
		default:
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return 0
		}
		if err != nil {
			errColor.Fprintf(stdio.Stderr, "%s\n", err)
			return exitFailure
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		evalREPLLine(line, &reporter, rv, in, stdio)
	}
}

var errColor = color.New(color.FgRed)

func evalREPLLine(
	line string,
	reporter *report.Reporter,
	rv *resolver.Resolver,
	in *interpreter.Interpreter,
	stdio mainer.Stdio,
) {
	reporter.Reset()

	toks := scanner.New(line, reporter).ScanTokens()
	stmts := parser.Parse(toks, reporter)
	if reporter.HadStaticError() {
		reporter.PrintStaticErrors(errWriter{stdio})
		return
	}

	locals := rv.Resolve(stmts)
	if reporter.HadStaticError() {
		reporter.PrintStaticErrors(errWriter{stdio})
		return
	}

	// A single bare expression statement auto-prints its value, except when
	// that would double-print an assignment's or call's own side effect.
	if len(stmts) == 1 {
		if es, ok := stmts[0].(*ast.ExpressionStmt); ok {
			if !isAssignOrCall(es.Expr) {
				v, err := in.EvaluateExpr(es.Expr, locals)
				if err != nil {
					printRuntimeErr(err, reporter, stdio)
					return
				}
				fmtPrintln(stdio, v.String())
				return
			}
		}
	}

	if err := in.Interpret(stmts, locals); err != nil {
		printRuntimeErr(err, reporter, stdio)
	}
}

func isAssignOrCall(e ast.Expr) bool {
	switch e.(type) {
	case *ast.AssignExpr, *ast.CallExpr, *ast.SetExpr:
		return true
	default:
		return false
	}
}

func printRuntimeErr(err error, reporter *report.Reporter, stdio mainer.Stdio) {
	if rerr, ok := err.(*report.RuntimeError); ok {
		reporter.RuntimeError(rerr)
		errColor.Fprintf(stdio.Stderr, "%s\n", rerr.Error())
		return
	}
	errColor.Fprintf(stdio.Stderr, "%s\n", err)
}

func fmtPrintln(stdio mainer.Stdio, s string) {
	stdio.Stdout.Write([]byte(s + "\n"))
}

// errWriter adapts a colorized Fprint to the io.Writer PrintStaticErrors
// expects, so scan/parse/resolve diagnostics render in the same color as
// runtime errors.
type errWriter struct {
	stdio mainer.Stdio
}

func (w errWriter) Write(p []byte) (int, error) {
	errColor.Fprint(w.stdio.Stderr, string(p))
	return len(p), nil
}
