// Package parser implements the Lox recursive-descent / Pratt parser: token
// stream in, list of statement nodes out, with panic-mode recovery at
// statement boundaries. A parser struct holds a cursor over a token slice,
// with consume/check/match helpers and one function per grammar production;
// error recovery uses Go's panic/recover as the unwinding mechanism for a
// caught parse error, the way a recursive-descent parser written with
// exceptions would unwind to the nearest statement boundary.
package parser

import (
	"golang.org/x/exp/slices"

	"github.com/mna/loxgo/lang/ast"
	"github.com/mna/loxgo/lang/report"
	"github.com/mna/loxgo/lang/token"
)

// statementBoundaryKinds are the token kinds synchronize looks for after a
// parse error: the start of any declaration or statement production.
var statementBoundaryKinds = []token.Token{
	token.CLASS, token.FUN, token.VAR, token.FOR, token.IF,
	token.WHILE, token.PRINT, token.RETURN,
}

const maxArgs = 255

// Parse parses toks (as produced by scanner.ScanTokens) into a list of
// top-level statements, reporting any syntax errors to reporter. The caller
// should not resolve or evaluate the result if reporter.HadStaticError()
// became true during parsing.
func Parse(toks []token.Value, reporter *report.Reporter) []ast.Stmt {
	p := &parser{toks: toks, reporter: reporter}
	var stmts []ast.Stmt
	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

type parser struct {
	toks     []token.Value
	current  int
	reporter *report.Reporter
}

// parseError unwinds parsing of the current declaration back to the
// enclosing declaration call, whose withRecover calls synchronize and moves
// on.
type parseError struct{}

func (p *parser) atEnd() bool { return p.peek().Kind == token.EOF }
func (p *parser) peek() token.Value { return p.toks[p.current] }
func (p *parser) previous() token.Value { return p.toks[p.current-1] }

func (p *parser) check(kind token.Token) bool {
	return !p.atEnd() && p.peek().Kind == kind
}

func (p *parser) advance() token.Value {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(kinds ...token.Token) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) consume(kind token.Token, message string) token.Value {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

func (p *parser) errorAt(tok token.Value, message string) parseError {
	p.reporter.ErrorAtToken(tok, tok.Kind, message)
	return parseError{}
}

// synchronize discards tokens until it reaches a statement boundary: a
// semicolon, or the start of a new declaration/statement keyword.
func (p *parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		if slices.Contains(statementBoundaryKinds, p.peek().Kind) {
			return
		}
		p.advance()
	}
}

// withRecover runs fn, recovering a parseError panic by calling synchronize
// and returning nil, so the parser resumes at the next statement boundary.
func (p *parser) withRecover(fn func() ast.Stmt) (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()
	return fn()
}
