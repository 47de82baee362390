package ast

import "github.com/mna/loxgo/lang/token"

// LiteralExpr is a literal number, string, boolean or nil. Value holds a
// float64, string, bool or nil.
type LiteralExpr struct {
	Line  token.Pos
	Value any
}

// GroupingExpr is a parenthesized expression.
type GroupingExpr struct {
	Line  token.Pos
	Inner Expr
}

// UnaryExpr is a prefix unary operator application (! or -).
type UnaryExpr struct {
	Line  token.Pos
	Op    token.Value
	Right Expr
}

// BinaryExpr is a binary operator application, including comparisons and the
// four arithmetic operators, but not 'and'/'or' (see LogicalExpr).
type BinaryExpr struct {
	Line  token.Pos
	Left  Expr
	Op    token.Value
	Right Expr
}

// LogicalExpr is a short-circuiting 'and' or 'or' expression.
type LogicalExpr struct {
	Line  token.Pos
	Left  Expr
	Op    token.Value
	Right Expr
}

// TernaryExpr is the C-style a ? b : c conditional expression,
// right-associative.
type TernaryExpr struct {
	Line             token.Pos
	Cond, Then, Else Expr
}

// VariableExpr reads the value bound to Name. ID is the node's stable id,
// used to key the resolver's locals side-table.
type VariableExpr struct {
	Line token.Pos
	Name token.Value
	ID   int
}

// AssignExpr assigns Value to the binding for Name. ID is the node's stable
// id, used to key the resolver's locals side-table.
type AssignExpr struct {
	Line  token.Pos
	Name  token.Value
	ID    int
	Value Expr
}

// CallExpr calls Callee with Args. Paren is the closing ')' token, kept to
// report the line of a failed call in runtime diagnostics.
type CallExpr struct {
	Line   token.Pos
	Callee Expr
	Paren  token.Value
	Args   []Expr
}

// GetExpr reads a property (field or method) named Name off Object.
type GetExpr struct {
	Line   token.Pos
	Object Expr
	Name   token.Value
}

// SetExpr assigns Value to the property named Name on Object.
type SetExpr struct {
	Line   token.Pos
	Object Expr
	Name   token.Value
	Value  Expr
}

// ThisExpr reads the implicit receiver inside a method body. ID is the
// node's stable id, used to key the resolver's locals side-table.
type ThisExpr struct {
	Line    token.Pos
	Keyword token.Value
	ID      int
}

// SuperExpr reads Method off the lexically enclosing class's superclass. ID
// is the node's stable id, used to key the resolver's locals side-table.
type SuperExpr struct {
	Line    token.Pos
	Keyword token.Value
	Method  token.Value
	ID      int
}

func (e *LiteralExpr) Pos() token.Pos  { return e.Line }
func (e *GroupingExpr) Pos() token.Pos { return e.Line }
func (e *UnaryExpr) Pos() token.Pos    { return e.Line }
func (e *BinaryExpr) Pos() token.Pos   { return e.Line }
func (e *LogicalExpr) Pos() token.Pos  { return e.Line }
func (e *TernaryExpr) Pos() token.Pos  { return e.Line }
func (e *VariableExpr) Pos() token.Pos { return e.Line }
func (e *AssignExpr) Pos() token.Pos   { return e.Line }
func (e *CallExpr) Pos() token.Pos     { return e.Line }
func (e *GetExpr) Pos() token.Pos      { return e.Line }
func (e *SetExpr) Pos() token.Pos      { return e.Line }
func (e *ThisExpr) Pos() token.Pos     { return e.Line }
func (e *SuperExpr) Pos() token.Pos    { return e.Line }

func (*LiteralExpr) exprNode()  {}
func (*GroupingExpr) exprNode() {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*LogicalExpr) exprNode()  {}
func (*TernaryExpr) exprNode()  {}
func (*VariableExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}
func (*CallExpr) exprNode()     {}
func (*GetExpr) exprNode()      {}
func (*SetExpr) exprNode()      {}
func (*ThisExpr) exprNode()     {}
func (*SuperExpr) exprNode()    {}

func (e *LiteralExpr) Walk(v Visitor) {}
func (e *GroupingExpr) Walk(v Visitor) { v(e.Inner) }
func (e *UnaryExpr) Walk(v Visitor)    { v(e.Right) }
func (e *BinaryExpr) Walk(v Visitor)   { v(e.Left); v(e.Right) }
func (e *LogicalExpr) Walk(v Visitor)  { v(e.Left); v(e.Right) }
func (e *TernaryExpr) Walk(v Visitor)  { v(e.Cond); v(e.Then); v(e.Else) }
func (e *VariableExpr) Walk(v Visitor) {}
func (e *AssignExpr) Walk(v Visitor)   { v(e.Value) }
func (e *CallExpr) Walk(v Visitor) {
	v(e.Callee)
	for _, a := range e.Args {
		v(a)
	}
}
func (e *GetExpr) Walk(v Visitor)   { v(e.Object) }
func (e *SetExpr) Walk(v Visitor)   { v(e.Object); v(e.Value) }
func (e *ThisExpr) Walk(v Visitor)  {}
func (e *SuperExpr) Walk(v Visitor) {}
