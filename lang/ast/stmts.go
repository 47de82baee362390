package ast

import "github.com/mna/loxgo/lang/token"

// ExpressionStmt evaluates Expr for its side effects and discards the
// result (except in the REPL, which auto-prints a bare expression's value).
type ExpressionStmt struct {
	Line token.Pos
	Expr Expr
}

// PrintStmt evaluates Expr and writes its value followed by a newline.
type PrintStmt struct {
	Line token.Pos
	Expr Expr
}

// VarStmt declares Name, bound to the evaluated Init (or nil if Init is
// nil).
type VarStmt struct {
	Line token.Pos
	Name token.Value
	Init Expr
}

// BlockStmt executes Stmts in a new child environment.
type BlockStmt struct {
	Line  token.Pos
	Stmts []Stmt
}

// IfStmt executes Then if Cond is truthy, else Else (which may be nil).
type IfStmt struct {
	Line       token.Pos
	Cond       Expr
	Then, Else Stmt
}

// WhileStmt repeatedly executes Body while Cond is truthy. A desugared
// 'for' loop produces this node with its increment appended to Body.
type WhileStmt struct {
	Line token.Pos
	Cond Expr
	Body Stmt
}

// FunctionStmt declares a named function (or, inside a ClassStmt, a
// method). Params are the parameter names in declaration order.
type FunctionStmt struct {
	Line   token.Pos
	Name   token.Value
	Params []token.Value
	Body   []Stmt
}

// ReturnStmt non-locally exits the enclosing function with the evaluated
// Value (nil means "return nil").
type ReturnStmt struct {
	Line    token.Pos
	Keyword token.Value
	Value   Expr
}

// ClassStmt declares a class. Superclass is nil if there is no 'less-than'
// clause. Methods are function declarations without the leading 'fun'
// keyword; a method named "init" is the constructor.
type ClassStmt struct {
	Line       token.Pos
	Name       token.Value
	Superclass *VariableExpr
	Methods    []*FunctionStmt
}

func (s *ExpressionStmt) Pos() token.Pos { return s.Line }
func (s *PrintStmt) Pos() token.Pos      { return s.Line }
func (s *VarStmt) Pos() token.Pos        { return s.Line }
func (s *BlockStmt) Pos() token.Pos      { return s.Line }
func (s *IfStmt) Pos() token.Pos         { return s.Line }
func (s *WhileStmt) Pos() token.Pos      { return s.Line }
func (s *FunctionStmt) Pos() token.Pos   { return s.Line }
func (s *ReturnStmt) Pos() token.Pos     { return s.Line }
func (s *ClassStmt) Pos() token.Pos      { return s.Line }

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
func (*ClassStmt) stmtNode()      {}

func (s *ExpressionStmt) Walk(v Visitor) { v(s.Expr) }
func (s *PrintStmt) Walk(v Visitor)      { v(s.Expr) }
func (s *VarStmt) Walk(v Visitor) {
	if s.Init != nil {
		v(s.Init)
	}
}
func (s *BlockStmt) Walk(v Visitor) {
	for _, st := range s.Stmts {
		v(st)
	}
}
func (s *IfStmt) Walk(v Visitor) {
	v(s.Cond)
	v(s.Then)
	if s.Else != nil {
		v(s.Else)
	}
}
func (s *WhileStmt) Walk(v Visitor) { v(s.Cond); v(s.Body) }
func (s *FunctionStmt) Walk(v Visitor) {
	for _, st := range s.Body {
		v(st)
	}
}
func (s *ReturnStmt) Walk(v Visitor) {
	if s.Value != nil {
		v(s.Value)
	}
}
func (s *ClassStmt) Walk(v Visitor) {
	if s.Superclass != nil {
		v(s.Superclass)
	}
	for _, m := range s.Methods {
		v(m)
	}
}
