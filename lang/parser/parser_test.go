package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/loxgo/lang/ast"
	"github.com/mna/loxgo/lang/parser"
	"github.com/mna/loxgo/lang/report"
	"github.com/mna/loxgo/lang/scanner"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *report.Reporter) {
	t.Helper()
	var rep report.Reporter
	toks := scanner.New(src, &rep).ScanTokens()
	require.False(t, rep.HadStaticError(), "scanning should not fail")
	stmts := parser.Parse(toks, &rep)
	return stmts, &rep
}

func TestParseExpressionStatement(t *testing.T) {
	stmts, rep := parse(t, "1 + 2 * 3;")
	require.False(t, rep.HadStaticError())
	require.Len(t, stmts, 1)

	es, ok := stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok)

	bin, ok := es.Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op.Lexeme)

	right, ok := bin.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", right.Op.Lexeme)
}

func TestParseTernaryRightAssociative(t *testing.T) {
	stmts, rep := parse(t, "a ? b : c ? d : e;")
	require.False(t, rep.HadStaticError())
	require.Len(t, stmts, 1)

	es := stmts[0].(*ast.ExpressionStmt)
	top, ok := es.Expr.(*ast.TernaryExpr)
	require.True(t, ok)

	_, ok = top.Else.(*ast.TernaryExpr)
	assert.True(t, ok, "else branch of a ? b : c ? d : e should itself be a ternary")
}

func TestParseVarDeclaration(t *testing.T) {
	stmts, rep := parse(t, "var x = 1;")
	require.False(t, rep.HadStaticError())
	require.Len(t, stmts, 1)

	v, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name.Lexeme)
	lit, ok := v.Init.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, 1.0, lit.Value)
}

func TestParseAssignment(t *testing.T) {
	stmts, rep := parse(t, "x = 2;")
	require.False(t, rep.HadStaticError())
	es := stmts[0].(*ast.ExpressionStmt)
	assign, ok := es.Expr.(*ast.AssignExpr)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name.Lexeme)
	assert.NotZero(t, assign.ID)
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, rep := parse(t, "1 = 2;")
	assert.True(t, rep.HadStaticError())
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts, rep := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.False(t, rep.HadStaticError())
	require.Len(t, stmts, 1)

	block, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Stmts, 2)

	_, ok = block.Stmts[0].(*ast.VarStmt)
	assert.True(t, ok)

	while, ok := block.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok)

	body, ok := while.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, body.Stmts, 2)
	_, ok = body.Stmts[0].(*ast.PrintStmt)
	assert.True(t, ok)
	_, ok = body.Stmts[1].(*ast.ExpressionStmt)
	assert.True(t, ok)
}

func TestParseClassWithSuperclassAndMethods(t *testing.T) {
	src := `
class Base {
  greet() { print "hi"; }
}
class Derived < Base {
  init(name) { this.name = name; }
}
`
	stmts, rep := parse(t, src)
	require.False(t, rep.HadStaticError())
	require.Len(t, stmts, 2)

	derived, ok := stmts[1].(*ast.ClassStmt)
	require.True(t, ok)
	assert.Equal(t, "Derived", derived.Name.Lexeme)
	require.NotNil(t, derived.Superclass)
	assert.Equal(t, "Base", derived.Superclass.Name.Lexeme)
	require.Len(t, derived.Methods, 1)
	assert.Equal(t, "init", derived.Methods[0].Name.Lexeme)
}

func TestParseSynchronizeRecoversAfterError(t *testing.T) {
	stmts, rep := parse(t, "var = 1;\nvar ok = 2;")
	assert.True(t, rep.HadStaticError())
	require.Len(t, stmts, 1)
	v, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "ok", v.Name.Lexeme)
}

func TestParseCallAndGetChain(t *testing.T) {
	stmts, rep := parse(t, "foo.bar(1, 2).baz;")
	require.False(t, rep.HadStaticError())
	es := stmts[0].(*ast.ExpressionStmt)

	get, ok := es.Expr.(*ast.GetExpr)
	require.True(t, ok)
	assert.Equal(t, "baz", get.Name.Lexeme)

	call, ok := get.Object.(*ast.CallExpr)
	require.True(t, ok)
	assert.Len(t, call.Args, 2)
}

func TestParseMissingSemicolonReportsError(t *testing.T) {
	_, rep := parse(t, "print 1")
	assert.True(t, rep.HadStaticError())
}
