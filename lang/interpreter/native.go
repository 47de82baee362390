package interpreter

import (
	"time"

	"github.com/mna/loxgo/lang/token"
)

// NativeFunction is a builtin implemented in Go rather than declared in Lox
// source, such as clock().
type NativeFunction struct {
	name  string
	arity int
	fn    func(in *Interpreter, args []Value) (Value, error)
}

var _ Callable = (*NativeFunction)(nil)

func (n *NativeFunction) Type() string { return "native function" }

// String prints every native function the same way, undifferentiated by
// name.
func (n *NativeFunction) String() string { return "<native fn>" }
func (n *NativeFunction) Arity() int     { return n.arity }

func (n *NativeFunction) Call(in *Interpreter, tok token.Value, args []Value) (Value, error) {
	return n.fn(in, args)
}

func defineNatives(globals *Environment) {
	globals.Define("clock", &NativeFunction{
		name:  "clock",
		arity: 0,
		fn: func(in *Interpreter, args []Value) (Value, error) {
			return Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
}
