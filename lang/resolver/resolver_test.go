package resolver_test

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/loxgo/lang/ast"
	"github.com/mna/loxgo/lang/parser"
	"github.com/mna/loxgo/lang/report"
	"github.com/mna/loxgo/lang/resolver"
	"github.com/mna/loxgo/lang/scanner"
)

func resolve(t *testing.T, src string) ([]ast.Stmt, resolver.Locals, *report.Reporter) {
	t.Helper()
	var rep report.Reporter
	toks := scanner.New(src, &rep).ScanTokens()
	stmts := parser.Parse(toks, &rep)
	require.False(t, rep.HadStaticError(), "parsing should not fail")
	locals := resolver.New(&rep).Resolve(stmts)
	return stmts, locals, &rep
}

func TestResolveClosureCapturesEnclosingLocal(t *testing.T) {
	src := `
{
  var a = 1;
  fun f() {
    print a;
  }
}
`
	stmts, locals, rep := resolve(t, src)
	require.False(t, rep.HadStaticError())

	block := stmts[0].(*ast.BlockStmt)
	fn := block.Stmts[1].(*ast.FunctionStmt)
	print := fn.Body[0].(*ast.PrintStmt)
	v := print.Expr.(*ast.VariableExpr)

	depth, ok := locals[v.ID]
	require.True(t, ok)
	assert.Equal(t, 1, depth)
}

func TestResolveGlobalIsNotInLocals(t *testing.T) {
	src := `
var g = 1;
fun f() { print g; }
`
	stmts, locals, rep := resolve(t, src)
	require.False(t, rep.HadStaticError())

	fn := stmts[1].(*ast.FunctionStmt)
	print := fn.Body[0].(*ast.PrintStmt)
	v := print.Expr.(*ast.VariableExpr)

	_, ok := locals[v.ID]
	assert.False(t, ok, "a reference to a global should not appear in the locals table")
}

func TestResolveSelfInitializationIsAnError(t *testing.T) {
	_, _, rep := resolve(t, `{ var a = a; }`)
	assert.True(t, rep.HadStaticError())
}

func TestResolveDuplicateLocalDeclarationIsAnError(t *testing.T) {
	_, _, rep := resolve(t, `{ var a = 1; var a = 2; }`)
	assert.True(t, rep.HadStaticError())
}

func TestResolveReturnOutsideFunctionIsAnError(t *testing.T) {
	_, _, rep := resolve(t, `return 1;`)
	assert.True(t, rep.HadStaticError())
}

func TestResolveThisOutsideClassIsAnError(t *testing.T) {
	_, _, rep := resolve(t, `print this;`)
	assert.True(t, rep.HadStaticError())
}

func TestResolveSuperWithoutSuperclassIsAnError(t *testing.T) {
	src := `
class A {
  method() { super.method(); }
}
`
	_, _, rep := resolve(t, src)
	assert.True(t, rep.HadStaticError())
}

func TestResolveClassCannotInheritFromItself(t *testing.T) {
	_, _, rep := resolve(t, `class A < A {}`)
	assert.True(t, rep.HadStaticError())
}

func TestResolveInitializerCannotReturnValue(t *testing.T) {
	src := `
class A {
  init() { return 1; }
}
`
	_, _, rep := resolve(t, src)
	assert.True(t, rep.HadStaticError())
}

func TestResolveInitializerCanReturnBareStatement(t *testing.T) {
	src := `
class A {
  init() { return; }
}
`
	_, _, rep := resolve(t, src)
	assert.False(t, rep.HadStaticError())
}

func TestResolveMethodResolvesThisAndSuper(t *testing.T) {
	src := `
class Base {
  greet() { print this; }
}
class Derived < Base {
  greet() { super.greet(); }
}
`
	_, _, rep := resolve(t, src)
	assert.False(t, rep.HadStaticError())
}

// depthsByName walks every block scope in a program and rebuilds a
// name -> depth map from the resolver's id-keyed locals table, so a whole
// nested-scope shape can be diffed in one assertion instead of one node at
// a time.
func depthsByName(stmts []ast.Stmt, locals resolver.Locals) map[string]int {
	depths := map[string]int{}
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		switch n := n.(type) {
		case *ast.VariableExpr:
			if d, ok := locals[n.ID]; ok {
				depths[n.Name.Lexeme] = d
			}
		}
		n.Walk(walk)
	}
	for _, s := range stmts {
		walk(s)
	}
	return depths
}

func TestResolveNestedScopeDepths(t *testing.T) {
	src := `
var a = "global";
{
  var b = "outer";
  {
    var c = "inner";
    print a;
    print b;
    print c;
  }
}
`
	stmts, locals, rep := resolve(t, src)
	require.False(t, rep.HadStaticError())

	want := map[string]int{"b": 1, "c": 0}
	got := depthsByName(stmts, locals)
	if diff := pretty.Compare(want, got); diff != "" {
		t.Fatalf("locals depth mismatch (-want +got):\n%s", diff)
	}
}
