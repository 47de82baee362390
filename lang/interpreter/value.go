// Package interpreter implements the Lox tree-walking evaluator: a runtime
// Value sum type, a parent-linked Environment chain, the class/instance
// object model, and the Interpreter itself, which walks the AST produced by
// the parser and annotated by the resolver.
//
// Nil, Boolean and String live in this file; Number and each callable or
// object kind get their own small file, all behind the shared
// Value/Callable interface split. Lox's value set is small (nil, boolean,
// number, string, function, class, instance), so the contract each one
// satisfies is limited to String/Type plus Callable for the invocable kinds.
package interpreter

import "github.com/mna/loxgo/lang/token"

// Value is the interface implemented by every value the evaluator produces
// or consumes: Nil, Boolean, Number, String, *Function, *NativeFunction,
// *Class and *Instance.
type Value interface {
	// String returns the representation printed by the 'print' statement and
	// the REPL.
	String() string
	// Type returns a short name for error messages (e.g. "number", "string").
	Type() string
}

// Callable is implemented by any value that may appear as the callee of a
// call expression: user-defined functions, native functions, and classes
// (calling a class constructs an instance).
type Callable interface {
	Value
	// Arity returns the number of arguments Call expects.
	Arity() int
	// Call invokes the callable with args, already evaluated left to right.
	Call(in *Interpreter, tok token.Value, args []Value) (Value, error)
}

// Nil is the single Lox "nil" value.
type Nil struct{}

func (Nil) String() string { return "nil" }
func (Nil) Type() string   { return "nil" }

// Boolean is a Lox "true" or "false" value.
type Boolean bool

func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (Boolean) Type() string { return "boolean" }

// String is a Lox string value.
type String string

func (s String) String() string { return string(s) }
func (String) Type() string     { return "string" }

// isTruthy implements Lox's truthiness rule: everything is truthy except
// nil and the boolean false.
func isTruthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Boolean:
		return bool(v)
	default:
		return true
	}
}

// isEqual implements Lox's equality rule: values of different dynamic types
// are never equal (no implicit conversion, unlike truthiness), nil equals
// only nil, and numbers/strings/booleans compare by value. Every other
// value (functions, classes, instances) compares by identity, which Go's ==
// already gives for the pointer-typed cases.
func isEqual(a, b Value) bool {
	switch a := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Boolean:
		bb, ok := b.(Boolean)
		return ok && a == bb
	case Number:
		bb, ok := b.(Number)
		return ok && a == bb
	case String:
		bb, ok := b.(String)
		return ok && a == bb
	default:
		return a == b
	}
}
