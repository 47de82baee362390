package interpreter

import "errors"

// returnSignal is how a 'return' statement unwinds the call stack back to
// the enclosing Function.Call: execute/evaluate propagate it up through the
// normal error return path (like any other error) until Call intercepts it,
// rather than relying on panic/recover. Every other statement and
// expression treats it exactly like an error and stops, which is what makes
// a return from inside a nested block or loop body work correctly.
type returnSignal struct {
	value Value
}

func (returnSignal) Error() string { return "return" }

func asReturnSignal(err error) (returnSignal, bool) {
	var rs returnSignal
	ok := errors.As(err, &rs)
	return rs, ok
}
