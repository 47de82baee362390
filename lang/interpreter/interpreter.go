package interpreter

import (
	"fmt"
	"io"

	"github.com/mna/loxgo/lang/ast"
	"github.com/mna/loxgo/lang/report"
	"github.com/mna/loxgo/lang/resolver"
)

// Interpreter walks a resolved program and executes it directly against a
// chain of Environments. It holds the one mutable piece of state a run
// needs beyond the AST: the current environment and the resolver's locals
// table.
type Interpreter struct {
	Globals     *Environment
	environment *Environment
	locals      resolver.Locals
	stdout      io.Writer
}

// New creates an Interpreter that writes 'print' statement output to
// stdout. Its globals environment is pre-populated with the interpreter's
// native functions (clock).
func New(stdout io.Writer) *Interpreter {
	globals := NewEnvironment()
	defineNatives(globals)
	return &Interpreter{Globals: globals, environment: globals, stdout: stdout}
}

// Interpret executes stmts in order, using locals (as produced by
// resolver.Resolve) to resolve variable references. It stops and returns
// the first error encountered; the caller is expected to report it via a
// report.Reporter and, for a *report.RuntimeError, print it.
func (in *Interpreter) Interpret(stmts []ast.Stmt, locals resolver.Locals) error {
	in.locals = locals
	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

// EvaluateExpr evaluates a single expression in the interpreter's current
// global environment, without executing it as a statement. The REPL uses
// this to auto-print the value of a bare expression line (a supplemented
// feature beyond canonical Lox; see SPEC_FULL.md).
func (in *Interpreter) EvaluateExpr(e ast.Expr, locals resolver.Locals) (Value, error) {
	in.locals = locals
	return in.evaluate(e)
}

func (in *Interpreter) execute(s ast.Stmt) error {
	switch s := s.(type) {
	case *ast.ExpressionStmt:
		_, err := in.evaluate(s.Expr)
		return err

	case *ast.PrintStmt:
		v, err := in.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.stdout, stringify(v))
		return nil

	case *ast.VarStmt:
		var value Value = Nil{}
		if s.Init != nil {
			v, err := in.evaluate(s.Init)
			if err != nil {
				return err
			}
			value = v
		}
		in.environment.Define(s.Name.Lexeme, value)
		return nil

	case *ast.BlockStmt:
		return in.executeBlock(s.Stmts, NewChildEnvironment(in.environment))

	case *ast.IfStmt:
		cond, err := in.evaluate(s.Cond)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := in.evaluate(s.Cond)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := newFunction(s, in.environment, false)
		in.environment.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		value := Value(Nil{})
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return returnSignal{value: value}

	case *ast.ClassStmt:
		return in.executeClassStmt(s)

	default:
		return fmt.Errorf("interpreter: unhandled statement type %T", s)
	}
}

func (in *Interpreter) executeClassStmt(s *ast.ClassStmt) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return report.NewRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.environment.Define(s.Name.Lexeme, Nil{})

	methodEnv := in.environment
	if s.Superclass != nil {
		methodEnv = NewChildEnvironment(in.environment)
		methodEnv.Define("super", superclass)
	}

	methods := newMethodMap()
	for _, m := range s.Methods {
		methods.Put(m.Name.Lexeme, newFunction(m, methodEnv, m.Name.Lexeme == "init"))
	}

	class := newClass(s.Name.Lexeme, superclass, methods)
	return in.environment.Assign(s.Name, class)
}

// executeBlock runs stmts against env, restoring the interpreter's previous
// environment before returning (including on error or non-local return),
// so a failure partway through a block never leaves the interpreter
// pointing at a discarded scope.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

// stringify renders a value the way 'print' and the REPL display it; Value's
// own String method already implements the number/nil/boolean formatting
// rules.
func stringify(v Value) string {
	return v.String()
}
