package interpreter

import (
	"github.com/mna/loxgo/lang/ast"
	"github.com/mna/loxgo/lang/token"
)

// Function is a user-defined Lox function or method: an AST node plus the
// environment it closed over at the point it was declared, which is what
// gives Lox closures their behavior.
type Function struct {
	declaration   *ast.FunctionStmt
	closure       *Environment
	isInitializer bool
}

var _ Callable = (*Function)(nil)

func newFunction(decl *ast.FunctionStmt, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: decl, closure: closure, isInitializer: isInitializer}
}

func (f *Function) Type() string   { return "function" }
func (f *Function) String() string { return "<fn " + f.declaration.Name.Lexeme + ">" }
func (f *Function) Arity() int     { return len(f.declaration.Params) }

// bind returns a copy of f whose closure has "this" bound to instance, used
// when a method is looked up off an instance.
func (f *Function) bind(instance *Instance) *Function {
	env := NewChildEnvironment(f.closure)
	env.Define("this", instance)
	return newFunction(f.declaration, env, f.isInitializer)
}

// Call runs the function body in a fresh environment parented on the
// closure, with parameters bound to args. A 'return' statement anywhere in
// the body unwinds to here via returnSignal; falling off the end of the
// body is equivalent to 'return nil' (or, for an initializer, 'return
// this').
func (f *Function) Call(in *Interpreter, tok token.Value, args []Value) (Value, error) {
	env := NewChildEnvironment(f.closure)
	for i, p := range f.declaration.Params {
		env.Define(p.Lexeme, args[i])
	}

	err := in.executeBlock(f.declaration.Body, env)
	if rs, ok := asReturnSignal(err); ok {
		if f.isInitializer {
			return f.closure.GetAt(0, "this"), nil
		}
		return rs.value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return Nil{}, nil
}
