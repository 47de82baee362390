package parser

import (
	"github.com/mna/loxgo/lang/ast"
	"github.com/mna/loxgo/lang/token"
)

// expression -> assignment
func (p *parser) expression() ast.Expr {
	return p.assignment()
}

// assignment -> ( call "." )? IDENT "=" assignment | ternary
//
// The left-hand side is parsed as a full ternary expression and then
// reinterpreted as an assignment target, rather than predicted from the
// current token; this is the standard trick for keeping the grammar
// non-ambiguous without arbitrary lookahead.
func (p *parser) assignment() ast.Expr {
	expr := p.ternary()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{Line: target.Line, Name: target.Name, ID: ast.NextID(), Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Line: target.Line, Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errorAt(equals, "Invalid assignment target.")
			return expr
		}
	}
	return expr
}

// ternary -> logic_or ( "?" ternary ":" ternary )?
//
// Right-associative: both branches recurse into ternary itself (the
// authoritative grammar), not the full expression production, so neither
// branch of a ternary admits a bare assignment.
func (p *parser) ternary() ast.Expr {
	cond := p.or()
	if p.match(token.QUESTION) {
		line := p.previous().Pos
		then := p.ternary()
		p.consume(token.COLON, "Expect ':' in ternary expression.")
		els := p.ternary()
		return &ast.TernaryExpr{Line: line, Cond: cond, Then: then, Else: els}
	}
	return cond
}

// logic_or -> logic_and ( "or" logic_and )*
func (p *parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.LogicalExpr{Line: expr.Pos(), Left: expr, Op: op, Right: right}
	}
	return expr
}

// logic_and -> equality ( "and" equality )*
func (p *parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.LogicalExpr{Line: expr.Pos(), Left: expr, Op: op, Right: right}
	}
	return expr
}

// equality -> comparison ( ( "!=" | "==" ) comparison )*
func (p *parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.BinaryExpr{Line: expr.Pos(), Left: expr, Op: op, Right: right}
	}
	return expr
}

// comparison -> term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.BinaryExpr{Line: expr.Pos(), Left: expr, Op: op, Right: right}
	}
	return expr
}

// term -> factor ( ( "-" | "+" ) factor )*
func (p *parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.BinaryExpr{Line: expr.Pos(), Left: expr, Op: op, Right: right}
	}
	return expr
}

// factor -> unary ( ( "/" | "*" ) unary )*
func (p *parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &ast.BinaryExpr{Line: expr.Pos(), Left: expr, Op: op, Right: right}
	}
	return expr
}

// unary -> ( "!" | "-" ) unary | call
func (p *parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.UnaryExpr{Line: op.Pos, Op: op, Right: right}
	}
	return p.call()
}

// call -> primary ( "(" arguments? ")" | "." IDENT )*
func (p *parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LPAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENT, "Expect property name after '.'.")
			expr = &ast.GetExpr{Line: expr.Pos(), Object: expr, Name: name}
		default:
			return expr
		}
	}
}

// arguments -> expression ( "," expression )*
func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RPAREN, "Expect ')' after arguments.")
	return &ast.CallExpr{Line: callee.Pos(), Callee: callee, Paren: paren, Args: args}
}

// primary -> "true" | "false" | "nil" | "this" | NUMBER | STRING | IDENT
//          | "(" expression ")" | "super" "." IDENT
func (p *parser) primary() ast.Expr {
	tok := p.peek()
	switch {
	case p.match(token.FALSE):
		return &ast.LiteralExpr{Line: tok.Pos, Value: false}
	case p.match(token.TRUE):
		return &ast.LiteralExpr{Line: tok.Pos, Value: true}
	case p.match(token.NIL):
		return &ast.LiteralExpr{Line: tok.Pos, Value: nil}
	case p.match(token.NUMBER):
		return &ast.LiteralExpr{Line: tok.Pos, Value: tok.Number}
	case p.match(token.STRING):
		return &ast.LiteralExpr{Line: tok.Pos, Value: tok.String}
	case p.match(token.SUPER):
		keyword := p.previous()
		p.consume(token.DOT, "Expect '.' after 'super'.")
		method := p.consume(token.IDENT, "Expect superclass method name.")
		return &ast.SuperExpr{Line: keyword.Pos, Keyword: keyword, Method: method, ID: ast.NextID()}
	case p.match(token.THIS):
		return &ast.ThisExpr{Line: tok.Pos, Keyword: tok, ID: ast.NextID()}
	case p.match(token.IDENT):
		return &ast.VariableExpr{Line: tok.Pos, Name: tok, ID: ast.NextID()}
	case p.match(token.LPAREN):
		expr := p.expression()
		p.consume(token.RPAREN, "Expect ')' after expression.")
		return &ast.GroupingExpr{Line: tok.Pos, Inner: expr}
	default:
		panic(p.errorAt(tok, "Expect expression."))
	}
}
