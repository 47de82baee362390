// Package report implements the process-wide diagnostic sink shared by the
// scanner, parser, resolver and interpreter. It tracks whether a static
// error or a runtime error has occurred during the current run, so the
// driver can choose an exit code, and it owns the diagnostic formats: a
// single "[line N] ..." shape for static errors, rather than a generic
// "file:line:col: msg" rendering, since this interpreter only ever compiles
// one file or REPL line at a time.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/mna/loxgo/lang/token"
)

// RuntimeError is a Lox runtime failure. It carries the token whose line is
// blamed in the diagnostic, rendered as "message\n[line N]".
type RuntimeError struct {
	Tok     token.Value
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Tok.Pos.Line())
}

// NewRuntimeError builds a RuntimeError for the given token and message.
func NewRuntimeError(tok token.Value, format string, args ...any) *RuntimeError {
	return &RuntimeError{Tok: tok, Message: fmt.Sprintf(format, args...)}
}

type staticError struct {
	line int
	text string
}

// Reporter is the process-wide diagnostic sink. The zero value is ready to
// use. The REPL calls Reset between lines so a line's error never bleeds
// into the next one's exit status; file mode never calls it.
type Reporter struct {
	errors          []staticError
	hadStaticError  bool
	hadRuntimeError bool
}

// Error records a static (scanner/parser/resolver) diagnostic at the given
// line, formatted as "[line N] Error: message" or, when where is non-empty,
// "[line N] Error where: message".
func (r *Reporter) Error(line int, where, message string) {
	r.hadStaticError = true
	text := "Error: " + message
	if where != "" {
		text = "Error " + where + ": " + message
	}
	r.errors = append(r.errors, staticError{line: line, text: text})
}

// ErrorAtToken records a static diagnostic located at tok, following the
// parser/resolver diagnostic format: "[line N] Error at 'lexeme': message" or
// "[line N] Error at end: message" for an EOF token.
func (r *Reporter) ErrorAtToken(tok token.Value, kind token.Token, message string) {
	if kind == token.EOF {
		r.Error(tok.Pos.Line(), "at end", message)
		return
	}
	r.Error(tok.Pos.Line(), fmt.Sprintf("at '%s'", tok.Lexeme), message)
}

// RuntimeError records that a runtime failure has occurred. The caller is
// responsible for printing err; Reporter only tracks the flag used for the
// process exit code.
func (r *Reporter) RuntimeError(err *RuntimeError) {
	r.hadRuntimeError = true
}

// HadStaticError reports whether any static error has been recorded since
// the last Reset.
func (r *Reporter) HadStaticError() bool { return r.hadStaticError }

// HadRuntimeError reports whether a runtime error has been recorded since
// the last Reset.
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntimeError }

// Reset clears both error flags and the accumulated static diagnostics. The
// REPL calls this between lines; file mode never calls it.
func (r *Reporter) Reset() {
	r.errors = nil
	r.hadStaticError = false
	r.hadRuntimeError = false
}

// PrintStaticErrors writes every accumulated static diagnostic to w, one per
// line, in the order reported by the pipeline stage that recorded them
// (scanner errors before parser errors before resolver errors), which is
// stable because each stage runs to completion before the next begins.
func (r *Reporter) PrintStaticErrors(w io.Writer) {
	for _, e := range r.errors {
		fmt.Fprintf(w, "[line %d] %s\n", e.line, e.text)
	}
}

// SortStaticErrors orders the accumulated diagnostics by line number. It is
// mainly useful when a single stage (e.g. the scanner, which can detect
// errors out of strict source order for multi-line tokens) needs a
// deterministic report.
func (r *Reporter) SortStaticErrors() {
	sort.SliceStable(r.errors, func(i, j int) bool { return r.errors[i].line < r.errors[j].line })
}

// ExitCode returns the process exit code for the outcome of a file-mode
// run: 65 for a static error, 70 for a runtime error (static errors take
// priority, since evaluation never runs after one), 0 otherwise.
func (r *Reporter) ExitCode() int {
	switch {
	case r.hadStaticError:
		return 65
	case r.hadRuntimeError:
		return 70
	default:
		return 0
	}
}
