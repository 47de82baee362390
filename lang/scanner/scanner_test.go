package scanner_test

import (
	"testing"

	"github.com/mna/loxgo/lang/report"
	"github.com/mna/loxgo/lang/scanner"
	"github.com/mna/loxgo/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, src string) ([]token.Value, *report.Reporter) {
	t.Helper()
	var rep report.Reporter
	toks := scanner.New(src, &rep).ScanTokens()
	return toks, &rep
}

func kinds(toks []token.Value) []token.Token {
	out := make([]token.Token, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks, rep := scan(t, "(){},.-+;*/! != = == < <= > >= ? :")
	require.False(t, rep.HadStaticError())
	assert.Equal(t, []token.Token{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA,
		token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.SLASH, token.BANG, token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL,
		token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL,
		token.QUESTION, token.COLON, token.EOF,
	}, kinds(toks))
}

func TestScanLineComment(t *testing.T) {
	toks, rep := scan(t, "1 // a comment\n2")
	require.False(t, rep.HadStaticError())
	require.Len(t, toks, 3)
	assert.Equal(t, token.NUMBER, toks[0].Kind)
	assert.Equal(t, float64(1), toks[0].Number)
	assert.Equal(t, 1, toks[0].Pos.Line())
	assert.Equal(t, float64(2), toks[1].Number)
	assert.Equal(t, 2, toks[1].Pos.Line())
}

func TestScanString(t *testing.T) {
	toks, rep := scan(t, `"hello, world"`)
	require.False(t, rep.HadStaticError())
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "hello, world", toks[0].String)
}

func TestScanMultilineString(t *testing.T) {
	toks, rep := scan(t, "\"a\nb\"\n1")
	require.False(t, rep.HadStaticError())
	assert.Equal(t, "a\nb", toks[0].String)
	assert.Equal(t, 3, toks[1].Pos.Line())
}

func TestScanUnterminatedString(t *testing.T) {
	_, rep := scan(t, `"never closed`)
	assert.True(t, rep.HadStaticError())
}

func TestScanUnexpectedCharacter(t *testing.T) {
	_, rep := scan(t, "$")
	assert.True(t, rep.HadStaticError())
}

func TestScanNumbers(t *testing.T) {
	toks, rep := scan(t, "123 3.14 .5 5.")
	require.False(t, rep.HadStaticError())
	// ".5" scans as DOT, NUMBER(5) since a leading dot is not part of a number;
	// "5." scans as NUMBER(5), DOT since a trailing dot needs a following
	// digit to be absorbed.
	assert.Equal(t, float64(123), toks[0].Number)
	assert.Equal(t, float64(3.14), toks[1].Number)
	assert.Equal(t, token.DOT, toks[2].Kind)
	assert.Equal(t, float64(5), toks[3].Number)
	assert.Equal(t, float64(5), toks[4].Number)
	assert.Equal(t, token.DOT, toks[5].Kind)
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	toks, rep := scan(t, "foo and class bar")
	require.False(t, rep.HadStaticError())
	assert.Equal(t, []token.Token{token.IDENT, token.AND, token.CLASS, token.IDENT, token.EOF}, kinds(toks))
}
