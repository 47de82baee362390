package interpreter

import (
	"github.com/dolthub/swiss"

	"github.com/mna/loxgo/lang/token"
)

// Class is a Lox class: a name, an optional superclass, and its own methods
// (inherited methods are found by walking Superclass, not copied in).
// Calling a Class constructs an Instance.
type Class struct {
	Name       string
	Superclass *Class
	methods    *swiss.Map[string, *Function]
}

var _ Callable = (*Class)(nil)

func newClass(name string, superclass *Class, methods *swiss.Map[string, *Function]) *Class {
	return &Class{Name: name, Superclass: superclass, methods: methods}
}

// newMethodMap returns an empty method table sized for a typical class body.
func newMethodMap() *swiss.Map[string, *Function] {
	return swiss.NewMap[string, *Function](4)
}

func (c *Class) Type() string   { return "class" }
func (c *Class) String() string { return c.Name }

// findMethod looks up name on c, then on its superclass chain.
func (c *Class) findMethod(name string) (*Function, bool) {
	if fn, ok := c.methods.Get(name); ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.findMethod(name)
	}
	return nil, false
}

// Arity is the initializer's arity, or 0 if the class declares none.
func (c *Class) Arity() int {
	if init, ok := c.findMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance of c, running its "init" method (if any)
// against args.
func (c *Class) Call(in *Interpreter, tok token.Value, args []Value) (Value, error) {
	instance := newInstance(c)
	if init, ok := c.findMethod("init"); ok {
		if _, err := init.bind(instance).Call(in, tok, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
