// Package scanner implements the Lox lexer: a single left-to-right pass over
// source text that produces a stream of tokens terminated by EOF. A struct
// carries start/current/line cursors, an advance/peek pair, and a big
// switch over the current character; lookahead never needs more than one
// byte past current.
package scanner

import (
	"strconv"

	"github.com/mna/loxgo/lang/report"
	"github.com/mna/loxgo/lang/token"
)

// Scanner tokenizes a single source string.
type Scanner struct {
	src      string
	reporter *report.Reporter

	start, current int
	line           int
}

// New creates a Scanner over src that reports errors to reporter.
func New(src string, reporter *report.Reporter) *Scanner {
	return &Scanner{src: src, reporter: reporter, line: 1}
}

// ScanTokens scans the entire source and returns every token, including a
// final EOF token.
func (s *Scanner) ScanTokens() []token.Value {
	var toks []token.Value
	for {
		tok := s.scanToken()
		if tok.Kind != token.ILLEGAL {
			toks = append(toks, tok)
		}
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func (s *Scanner) atEnd() bool { return s.current >= len(s.src) }

func (s *Scanner) advance() byte {
	c := s.src[s.current]
	s.current++
	return c
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

func (s *Scanner) match(want byte) bool {
	if s.atEnd() || s.src[s.current] != want {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) lexeme() string { return s.src[s.start:s.current] }

func (s *Scanner) make(kind token.Token) token.Value {
	return token.Value{Kind: kind, Pos: token.Pos(s.line), Lexeme: s.lexeme()}
}

// scanToken skips whitespace and comments, then scans and returns the next
// real token. It returns a token.Value with Kind ILLEGAL for input that
// produced only a diagnostic (the caller discards those).
func (s *Scanner) scanToken() token.Value {
	s.skipWhitespaceAndComments()
	s.start = s.current
	if s.atEnd() {
		return s.make(token.EOF)
	}

	c := s.advance()
	switch {
	case isDigit(c):
		return s.number()
	case isAlpha(c):
		return s.identifier()
	}

	switch c {
	case '(':
		return s.make(token.LPAREN)
	case ')':
		return s.make(token.RPAREN)
	case '{':
		return s.make(token.LBRACE)
	case '}':
		return s.make(token.RBRACE)
	case ',':
		return s.make(token.COMMA)
	case '.':
		return s.make(token.DOT)
	case '-':
		return s.make(token.MINUS)
	case '+':
		return s.make(token.PLUS)
	case ';':
		return s.make(token.SEMICOLON)
	case '*':
		return s.make(token.STAR)
	case '?':
		return s.make(token.QUESTION)
	case ':':
		return s.make(token.COLON)
	case '/':
		return s.make(token.SLASH)
	case '!':
		if s.match('=') {
			return s.make(token.BANG_EQUAL)
		}
		return s.make(token.BANG)
	case '=':
		if s.match('=') {
			return s.make(token.EQUAL_EQUAL)
		}
		return s.make(token.EQUAL)
	case '<':
		if s.match('=') {
			return s.make(token.LESS_EQUAL)
		}
		return s.make(token.LESS)
	case '>':
		if s.match('=') {
			return s.make(token.GREATER_EQUAL)
		}
		return s.make(token.GREATER)
	case '"':
		return s.string()
	default:
		s.reporter.Error(s.line, "", "Unexpected character.")
		return token.Value{Kind: token.ILLEGAL}
	}
}

func (s *Scanner) skipWhitespaceAndComments() {
	for {
		if s.atEnd() {
			return
		}
		switch s.peek() {
		case ' ', '\t', '\r':
			s.advance()
		case '\n':
			s.line++
			s.advance()
		case '/':
			if s.peekNext() == '/' {
				for !s.atEnd() && s.peek() != '\n' {
					s.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }

func (s *Scanner) identifier() token.Value {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	lit := s.lexeme()
	return s.make(token.Lookup(lit))
}

func (s *Scanner) number() token.Value {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	tok := s.make(token.NUMBER)
	n, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil {
		// unreachable for a lexeme produced by the scan loop above, but keep the
		// zero value rather than panicking on a malformed literal.
		n = 0
	}
	tok.Number = n
	return tok
}

func (s *Scanner) string() token.Value {
	for !s.atEnd() && s.peek() != '"' {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.atEnd() {
		s.reporter.Error(s.line, "", "Unterminated string.")
		return token.Value{Kind: token.ILLEGAL}
	}

	s.advance() // closing quote
	tok := s.make(token.STRING)
	tok.String = s.src[s.start+1 : s.current-1]
	return tok
}
