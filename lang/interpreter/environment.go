package interpreter

import (
	"github.com/dolthub/swiss"

	"github.com/mna/loxgo/lang/report"
	"github.com/mna/loxgo/lang/token"
)

// Environment is one link in the parent-linked chain of lexical scopes: the
// globals environment has a nil Parent, and every block, function call and
// method invocation pushes a fresh child. Bindings are stored in a
// swiss.Map rather than a built-in map.
type Environment struct {
	Parent *Environment
	values *swiss.Map[string, Value]
}

// NewEnvironment creates a top-level environment with no parent (used once,
// for the interpreter's globals).
func NewEnvironment() *Environment {
	return &Environment{values: swiss.NewMap[string, Value](8)}
}

// NewChildEnvironment creates an environment nested inside parent, as
// happens on every block, function call and method invocation.
func NewChildEnvironment(parent *Environment) *Environment {
	return &Environment{Parent: parent, values: swiss.NewMap[string, Value](8)}
}

// Define binds name to value in this environment, shadowing (rather than
// erroring on) any existing binding of the same name — redeclaring a
// variable in the same scope is legal in Lox.
func (e *Environment) Define(name string, value Value) {
	e.values.Put(name, value)
}

// Get looks up name starting in this environment and walking out through
// Parent, reporting a runtime error at tok if no binding is found.
func (e *Environment) Get(tok token.Value) (Value, error) {
	for env := e; env != nil; env = env.Parent {
		if v, ok := env.values.Get(tok.Lexeme); ok {
			return v, nil
		}
	}
	return nil, report.NewRuntimeError(tok, "Undefined variable '%s'.", tok.Lexeme)
}

// GetAt looks up name in the environment distance links out from this one,
// as determined by the resolver. It never falls further out or reports an
// "undefined variable" error: a resolved reference is always present.
func (e *Environment) GetAt(distance int, name string) Value {
	env := e.ancestor(distance)
	v, _ := env.values.Get(name)
	return v
}

// Assign rebinds name's nearest existing binding to value, reporting a
// runtime error at tok if name is not already bound anywhere in the chain.
func (e *Environment) Assign(tok token.Value, value Value) error {
	for env := e; env != nil; env = env.Parent {
		if _, ok := env.values.Get(tok.Lexeme); ok {
			env.values.Put(tok.Lexeme, value)
			return nil
		}
	}
	return report.NewRuntimeError(tok, "Undefined variable '%s'.", tok.Lexeme)
}

// AssignAt rebinds name in the environment distance links out from this
// one, as determined by the resolver.
func (e *Environment) AssignAt(distance int, name string, value Value) {
	e.ancestor(distance).values.Put(name, value)
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Parent
	}
	return env
}
