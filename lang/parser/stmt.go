package parser

import (
	"github.com/mna/loxgo/lang/ast"
	"github.com/mna/loxgo/lang/token"
)

// declaration -> classDecl | funDecl | varDecl | statement
func (p *parser) declaration() ast.Stmt {
	return p.withRecover(func() ast.Stmt {
		switch {
		case p.match(token.CLASS):
			return p.classDecl()
		case p.match(token.FUN):
			return p.function("function")
		case p.match(token.VAR):
			return p.varDecl()
		default:
			return p.statement()
		}
	})
}

// classDecl -> "class" IDENT ( "<" IDENT )? "{" function* "}"
func (p *parser) classDecl() ast.Stmt {
	line := p.previous().Pos
	name := p.consume(token.IDENT, "Expect class name.")

	var super *ast.VariableExpr
	if p.match(token.LESS) {
		p.consume(token.IDENT, "Expect superclass name.")
		super = &ast.VariableExpr{Line: p.previous().Pos, Name: p.previous(), ID: ast.NextID()}
	}

	p.consume(token.LBRACE, "Expect '{' before class body.")
	var methods []*ast.FunctionStmt
	for !p.check(token.RBRACE) && !p.atEnd() {
		methods = append(methods, p.function("method").(*ast.FunctionStmt))
	}
	p.consume(token.RBRACE, "Expect '}' after class body.")

	return &ast.ClassStmt{Line: line, Name: name, Superclass: super, Methods: methods}
}

// function -> IDENT "(" parameters? ")" block
func (p *parser) function(kind string) ast.Stmt {
	line := p.peek().Pos
	name := p.consume(token.IDENT, "Expect "+kind+" name.")

	p.consume(token.LPAREN, "Expect '(' after "+kind+" name.")
	var params []token.Value
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.IDENT, "Expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RPAREN, "Expect ')' after parameters.")

	p.consume(token.LBRACE, "Expect '{' before "+kind+" body.")
	body := p.block()

	return &ast.FunctionStmt{Line: line, Name: name, Params: params, Body: body}
}

// varDecl -> "var" IDENT ( "=" expression )? ";"
func (p *parser) varDecl() ast.Stmt {
	line := p.previous().Pos
	name := p.consume(token.IDENT, "Expect variable name.")

	var init ast.Expr
	if p.match(token.EQUAL) {
		init = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Line: line, Name: name, Init: init}
}

// statement -> exprStmt | forStmt | ifStmt | printStmt | returnStmt | whileStmt | block
func (p *parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStmt()
	case p.match(token.IF):
		return p.ifStmt()
	case p.match(token.PRINT):
		return p.printStmt()
	case p.match(token.RETURN):
		return p.returnStmt()
	case p.match(token.WHILE):
		return p.whileStmt()
	case p.match(token.LBRACE):
		return &ast.BlockStmt{Line: p.previous().Pos, Stmts: p.block()}
	default:
		return p.exprStmt()
	}
}

// forStmt desugars into a while loop: the initializer runs once before it (in
// its own block if present), the condition defaults to 'true' if omitted, and
// the increment is appended to the end of the body.
func (p *parser) forStmt() ast.Stmt {
	line := p.previous().Pos
	p.consume(token.LPAREN, "Expect '(' after 'for'.")

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		// no initializer
	case p.match(token.VAR):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after loop condition.")

	var incr ast.Expr
	if !p.check(token.RPAREN) {
		incr = p.expression()
	}
	p.consume(token.RPAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if incr != nil {
		body = &ast.BlockStmt{Line: line, Stmts: []ast.Stmt{body, &ast.ExpressionStmt{Line: line, Expr: incr}}}
	}
	if cond == nil {
		cond = &ast.LiteralExpr{Line: line, Value: true}
	}
	body = &ast.WhileStmt{Line: line, Cond: cond, Body: body}

	if init != nil {
		body = &ast.BlockStmt{Line: line, Stmts: []ast.Stmt{init, body}}
	}
	return body
}

// ifStmt -> "if" "(" expression ")" statement ( "else" statement )?
func (p *parser) ifStmt() ast.Stmt {
	line := p.previous().Pos
	p.consume(token.LPAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RPAREN, "Expect ')' after if condition.")

	then := p.statement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return &ast.IfStmt{Line: line, Cond: cond, Then: then, Else: els}
}

// printStmt -> "print" expression ";"
func (p *parser) printStmt() ast.Stmt {
	line := p.previous().Pos
	value := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after value.")
	return &ast.PrintStmt{Line: line, Expr: value}
}

// returnStmt -> "return" expression? ";"
func (p *parser) returnStmt() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after return value.")
	return &ast.ReturnStmt{Line: keyword.Pos, Keyword: keyword, Value: value}
}

// whileStmt -> "while" "(" expression ")" statement
func (p *parser) whileStmt() ast.Stmt {
	line := p.previous().Pos
	p.consume(token.LPAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RPAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Line: line, Cond: cond, Body: body}
}

// block -> "{" declaration* "}"
func (p *parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(token.RBRACE, "Expect '}' after block.")
	return stmts
}

// exprStmt -> expression ";"
func (p *parser) exprStmt() ast.Stmt {
	line := p.peek().Pos
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Line: line, Expr: expr}
}
