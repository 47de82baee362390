package interpreter_test

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/loxgo/lang/interpreter"
	"github.com/mna/loxgo/lang/parser"
	"github.com/mna/loxgo/lang/report"
	"github.com/mna/loxgo/lang/resolver"
	"github.com/mna/loxgo/lang/scanner"
)

// run scans, parses, resolves and interprets src, returning everything
// printed to stdout and any runtime error encountered.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	var rep report.Reporter
	toks := scanner.New(src, &rep).ScanTokens()
	stmts := parser.Parse(toks, &rep)
	require.False(t, rep.HadStaticError(), "program should parse cleanly")

	locals := resolver.New(&rep).Resolve(stmts)
	require.False(t, rep.HadStaticError(), "program should resolve cleanly")

	var out bytes.Buffer
	in := interpreter.New(&out)
	err := in.Interpret(stmts, locals)
	return out.String(), err
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestArithmeticAndPrecedence(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, lines(out))
}

func TestStringConcatenation(t *testing.T) {
	out, err := run(t, `print "foo" + "bar";`)
	require.NoError(t, err)
	assert.Equal(t, []string{"foobar"}, lines(out))
}

func TestNumberFormattingDropsTrailingZero(t *testing.T) {
	out, err := run(t, `print 6.0 / 2.0;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, lines(out))
}

func TestDivisionByZeroFollowsIEEE754(t *testing.T) {
	out, err := run(t, `
print 1 / 0;
print -1 / 0;
print 0 / 0;
`)
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 3)
	assert.True(t, mustInf(t, got[0], 1), "1/0 should print +Inf, got %q", got[0])
	assert.True(t, mustInf(t, got[1], -1), "-1/0 should print -Inf, got %q", got[1])
	assert.Equal(t, "NaN", got[2])
}

func mustInf(t *testing.T, s string, sign int) bool {
	t.Helper()
	f, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err)
	return math.IsInf(f, sign)
}

func TestTruthinessAndEquality(t *testing.T) {
	out, err := run(t, `
print nil == nil;
print nil == false;
print 0 == false;
print "1" == 1;
print 1 == 1.0;
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"true", "false", "false", "false", "true"}, lines(out))
}

func TestTernaryOperator(t *testing.T) {
	out, err := run(t, `print true ? "yes" : "no";`)
	require.NoError(t, err)
	assert.Equal(t, []string{"yes"}, lines(out))
}

func TestVariablesAndBlockScoping(t *testing.T) {
	out, err := run(t, `
var a = "global";
{
  var a = "local";
  print a;
}
print a;
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"local", "global"}, lines(out))
}

func TestWhileAndForLoops(t *testing.T) {
	out, err := run(t, `
var i = 0;
while (i < 3) {
  print i;
  i = i + 1;
}
for (var j = 0; j < 3; j = j + 1) print j;
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "0", "1", "2"}, lines(out))
}

func TestClosuresCaptureEnvironment(t *testing.T) {
	out, err := run(t, `
fun makeCounter() {
  var i = 0;
  fun count() {
    i = i + 1;
    print i;
  }
  return count;
}
var counter = makeCounter();
counter();
counter();
`)
	require.NoError(t, err)
	want := []string{"1", "2"}
	got := lines(out)
	if diff := pretty.Compare(want, got); diff != "" {
		t.Fatalf("counter output mismatch (-want +got):\n%s", diff)
	}
}

func TestFunctionReturnAndRecursion(t *testing.T) {
	out, err := run(t, `
fun fib(n) {
  if (n < 2) return n;
  return fib(n - 1) + fib(n - 2);
}
print fib(8);
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"21"}, lines(out))
}

func TestClassInstancesAndFields(t *testing.T) {
	out, err := run(t, `
class Point {
  init(x, y) {
    this.x = x;
    this.y = y;
  }
  sum() {
    return this.x + this.y;
  }
}
var p = Point(1, 2);
print p.sum();
print p;
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "Point instance"}, lines(out))
}

func TestClassInheritanceAndSuper(t *testing.T) {
	out, err := run(t, `
class Animal {
  speak() {
    print "...";
  }
}
class Dog < Animal {
  speak() {
    super.speak();
    print "Woof";
  }
}
Dog().speak();
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"...", "Woof"}, lines(out))
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print undefined_name;`)
	require.Error(t, err)
	var rerr *report.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Error(), "Undefined variable 'undefined_name'")
}

func TestAddingStringToNumberIsRuntimeError(t *testing.T) {
	_, err := run(t, `print "foo" + 1;`)
	require.Error(t, err)
	var rerr *report.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Error(), "Operands must be two numbers or two strings.")
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `
var x = 1;
x();
`)
	require.Error(t, err)
	var rerr *report.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Error(), "Can only call functions and classes.")
}

func TestWrongArityIsRuntimeError(t *testing.T) {
	_, err := run(t, `
fun f(a, b) { return a + b; }
f(1);
`)
	require.Error(t, err)
	var rerr *report.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Error(), "Expected 2 arguments but got 1.")
}
