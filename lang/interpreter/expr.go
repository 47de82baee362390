package interpreter

import (
	"fmt"

	"github.com/mna/loxgo/lang/ast"
	"github.com/mna/loxgo/lang/report"
	"github.com/mna/loxgo/lang/token"
)

func (in *Interpreter) evaluate(e ast.Expr) (Value, error) {
	switch e := e.(type) {
	case *ast.LiteralExpr:
		return literalValue(e.Value), nil

	case *ast.GroupingExpr:
		return in.evaluate(e.Inner)

	case *ast.VariableExpr:
		return in.lookUpVariable(e.Name, e.ID)

	case *ast.AssignExpr:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.locals[e.ID]; ok {
			in.environment.AssignAt(distance, e.Name.Lexeme, value)
		} else if err := in.Globals.Assign(e.Name, value); err != nil {
			return nil, err
		}
		return value, nil

	case *ast.UnaryExpr:
		return in.evalUnary(e)

	case *ast.BinaryExpr:
		return in.evalBinary(e)

	case *ast.LogicalExpr:
		return in.evalLogical(e)

	case *ast.TernaryExpr:
		cond, err := in.evaluate(e.Cond)
		if err != nil {
			return nil, err
		}
		if isTruthy(cond) {
			return in.evaluate(e.Then)
		}
		return in.evaluate(e.Else)

	case *ast.CallExpr:
		return in.evalCall(e)

	case *ast.GetExpr:
		obj, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, report.NewRuntimeError(e.Name, "Only instances have properties.")
		}
		return inst.Get(e.Name)

	case *ast.SetExpr:
		obj, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, report.NewRuntimeError(e.Name, "Only instances have fields.")
		}
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(e.Name, value)
		return value, nil

	case *ast.ThisExpr:
		return in.lookUpVariable(e.Keyword, e.ID)

	case *ast.SuperExpr:
		return in.evalSuper(e)

	default:
		return nil, fmt.Errorf("interpreter: unhandled expression type %T", e)
	}
}

func literalValue(v any) Value {
	switch v := v.(type) {
	case nil:
		return Nil{}
	case bool:
		return Boolean(v)
	case float64:
		return Number(v)
	case string:
		return String(v)
	default:
		panic(fmt.Sprintf("interpreter: unexpected literal type %T", v))
	}
}

func (in *Interpreter) lookUpVariable(name token.Value, id int) (Value, error) {
	if distance, ok := in.locals[id]; ok {
		return in.environment.GetAt(distance, name.Lexeme), nil
	}
	return in.Globals.Get(name)
}

func (in *Interpreter) evalUnary(e *ast.UnaryExpr) (Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.MINUS:
		n, ok := right.(Number)
		if !ok {
			return nil, report.NewRuntimeError(e.Op, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return Boolean(!isTruthy(right)), nil
	default:
		return nil, fmt.Errorf("interpreter: unhandled unary operator %v", e.Op.Kind)
	}
}

func (in *Interpreter) evalLogical(e *ast.LogicalExpr) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else if !isTruthy(left) {
		return left, nil
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) evalBinary(e *ast.BinaryExpr) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.EQUAL_EQUAL:
		return Boolean(isEqual(left, right)), nil
	case token.BANG_EQUAL:
		return Boolean(!isEqual(left, right)), nil

	case token.PLUS:
		if ln, ok := left.(Number); ok {
			if rn, ok := right.(Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(String); ok {
			if rs, ok := right.(String); ok {
				return ls + rs, nil
			}
		}
		return nil, report.NewRuntimeError(e.Op, "Operands must be two numbers or two strings.")

	case token.MINUS, token.STAR, token.SLASH,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, rn, err := checkNumberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		switch e.Op.Kind {
		case token.MINUS:
			return ln - rn, nil
		case token.STAR:
			return ln * rn, nil
		case token.SLASH:
			// Division by zero follows IEEE-754 (±Inf or NaN), not a runtime
			// error: Go's float64 division already behaves this way.
			return ln / rn, nil
		case token.GREATER:
			return Boolean(ln > rn), nil
		case token.GREATER_EQUAL:
			return Boolean(ln >= rn), nil
		case token.LESS:
			return Boolean(ln < rn), nil
		default: // token.LESS_EQUAL
			return Boolean(ln <= rn), nil
		}

	default:
		return nil, fmt.Errorf("interpreter: unhandled binary operator %v", e.Op.Kind)
	}
}

func checkNumberOperands(op token.Value, left, right Value) (Number, Number, error) {
	ln, ok := left.(Number)
	if !ok {
		return 0, 0, report.NewRuntimeError(op, "Operands must be numbers.")
	}
	rn, ok := right.(Number)
	if !ok {
		return 0, 0, report.NewRuntimeError(op, "Operands must be numbers.")
	}
	return ln, rn, nil
}

func (in *Interpreter) evalCall(e *ast.CallExpr) (Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, report.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, report.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(in, e.Paren, args)
}

func (in *Interpreter) evalSuper(e *ast.SuperExpr) (Value, error) {
	distance := in.locals[e.ID]
	superclass, _ := in.environment.GetAt(distance, "super").(*Class)
	object, _ := in.environment.GetAt(distance-1, "this").(*Instance)

	method, ok := superclass.findMethod(e.Method.Lexeme)
	if !ok {
		return nil, report.NewRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.bind(object), nil
}
