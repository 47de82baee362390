// Package resolver performs the static scope analysis pass between parsing
// and evaluation: for every variable reference it determines how many
// enclosing block scopes separate the reference from the scope that
// declares it, recording the answer in a side-table keyed by the AST node's
// stable id (ast.NextID) rather than mutating the node. The interpreter
// consults this table instead of walking its environment chain to decide
// how far out a lookup or assignment resolves, which is what gives Lox
// closures their lexical (rather than dynamic) scoping.
//
// A single pre-order walk carries a stack of scopes, reporting errors as it
// goes, so one pass both resolves variables and enforces the static rules:
// no return outside a function, no this/super outside a method/subclass, no
// self-initializing var, no duplicate parameter names or local declarations,
// no inheriting from self.
package resolver

import (
	"github.com/mna/loxgo/lang/ast"
	"github.com/mna/loxgo/lang/report"
	"github.com/mna/loxgo/lang/token"
)

// Locals maps a variable-bearing expression node's id (VariableExpr.ID,
// AssignExpr.ID, ThisExpr.ID or SuperExpr.ID) to the number of enclosing
// environments to skip to find its binding. A node absent from the map
// resolves in the global environment.
type Locals map[int]int

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnInitializer
	fnMethod
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Resolver walks a parsed program and fills in a Locals table.
type Resolver struct {
	reporter    *report.Reporter
	scopes      []map[string]bool
	locals      Locals
	currentFn   functionType
	currentCls  classType
}

// New creates a Resolver that reports errors to reporter.
func New(reporter *report.Reporter) *Resolver {
	return &Resolver{reporter: reporter, locals: make(Locals)}
}

// Resolve walks stmts and returns the accumulated Locals table. It should be
// called once per top-level program (or once per REPL line); the returned
// table is keyed by global node ids so re-running it on more top-level
// statements in the same process is safe.
func (r *Resolver) Resolve(stmts []ast.Stmt) Locals {
	r.resolveStmts(stmts)
	return r.locals
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, map[string]bool{}) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) declare(name token.Value) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.reporter.ErrorAtToken(name, name.Kind, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Value) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal searches the scope stack from the innermost scope outward,
// recording the distance at which name is found under id.
func (r *Resolver) resolveLocal(id int, name token.Value) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[id] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any scope: treat as global.
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionType) {
	enclosing := r.currentFn
	r.currentFn = kind
	defer func() { r.currentFn = enclosing }()

	r.beginScope()
	defer r.endScope()

	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(fn.Body)
}
