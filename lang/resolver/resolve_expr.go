package resolver

import "github.com/mna/loxgo/lang/ast"

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.reporter.ErrorAtToken(e.Name, e.Name.Kind, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e.ID, e.Name)

	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.ID, e.Name)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)

	case *ast.TernaryExpr:
		r.resolveExpr(e.Cond)
		r.resolveExpr(e.Then)
		r.resolveExpr(e.Else)

	case *ast.GroupingExpr:
		r.resolveExpr(e.Inner)

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.GetExpr:
		r.resolveExpr(e.Object)

	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.ThisExpr:
		if r.currentCls == classNone {
			r.reporter.ErrorAtToken(e.Keyword, e.Keyword.Kind, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e.ID, e.Keyword)

	case *ast.SuperExpr:
		switch r.currentCls {
		case classNone:
			r.reporter.ErrorAtToken(e.Keyword, e.Keyword.Kind, "Can't use 'super' outside of a class.")
		case classClass:
			r.reporter.ErrorAtToken(e.Keyword, e.Keyword.Kind, "Can't use 'super' in a class with no superclass.")
		default:
			r.resolveLocal(e.ID, e.Keyword)
		}

	case *ast.LiteralExpr:
		// no identifiers to resolve

	default:
		panic("resolver: unhandled expression type")
	}
}
