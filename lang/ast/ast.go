// Package ast defines the Lox abstract syntax tree: a sum-of-structs Expr
// hierarchy and a sum-of-structs Stmt hierarchy, both satisfying a common
// Node contract with line-only positions.
package ast

import "github.com/mna/loxgo/lang/token"

// Node is implemented by every expression and statement node.
type Node interface {
	// Pos returns the source line the node starts on.
	Pos() token.Pos
	// Walk visits this node's direct children, in evaluation order.
	Walk(v Visitor)
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Visitor is called by Walk for each direct child of a node.
type Visitor func(Node)

// NextID returns a fresh, process-wide unique id, used to key the resolver's
// locals side-table: every variable-bearing node carries a stable numeric
// id. The parser calls this once per variable-bearing node it creates.
func NextID() int {
	nodeIDCounter++
	return nodeIDCounter
}

// nodeIDCounter is intentionally package-level and not reset between runs:
// within a single process, ids only need to be unique, not stable across
// separate parses of the same source. The REPL parses each line separately
// but resolves every line with one shared resolver and locals table, so ids
// must stay unique across the whole session.
var nodeIDCounter int
