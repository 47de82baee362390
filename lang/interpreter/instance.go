package interpreter

import (
	"github.com/dolthub/swiss"

	"github.com/mna/loxgo/lang/report"
	"github.com/mna/loxgo/lang/token"
)

// Instance is a runtime Lox object: a class reference plus its own mutable
// field map. Methods are not stored per-instance; Get binds them from the
// class on lookup.
type Instance struct {
	Class  *Class
	fields *swiss.Map[string, Value]
}

func newInstance(class *Class) *Instance {
	return &Instance{Class: class, fields: swiss.NewMap[string, Value](4)}
}

func (i *Instance) Type() string   { return "instance" }
func (i *Instance) String() string { return i.Class.Name + " instance" }

// Get resolves a property access: fields shadow methods, and a method is
// bound to the receiver at lookup time, not at declaration time.
func (i *Instance) Get(name token.Value) (Value, error) {
	if v, ok := i.fields.Get(name.Lexeme); ok {
		return v, nil
	}
	if fn, ok := i.Class.findMethod(name.Lexeme); ok {
		return fn.bind(i), nil
	}
	return nil, report.NewRuntimeError(name, "Undefined property '%s'.", name.Lexeme)
}

// Set assigns a field on the instance, creating it if absent. Lox has no
// notion of a "field declaration"; any property may be set on any instance.
func (i *Instance) Set(name token.Value, value Value) {
	i.fields.Put(name.Lexeme, value)
}
