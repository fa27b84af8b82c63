package parser

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

func (p *parser) base(line int) ast.ExprBase {
	return ast.ExprBase{Id: p.newID(), LineNo: line}
}

func (p *parser) expression() ast.Expr {
	return p.assignment()
}

// assignment is right-associative: it parses the left-hand side as a
// full logic_or expression, then, if followed by '=', recursively parses
// the right-hand side. A bare Variable target becomes Assign; a Get
// target becomes Set; anything else is a reported (non-fatal) error.
func (p *parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{ExprBase: p.base(equals.Line), Name: target.Name, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{ExprBase: p.base(equals.Line), Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errorAt(equals, "Invalid assignment target.")
			return expr
		}
	}
	return expr
}

func (p *parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.LogicalExpr{ExprBase: p.base(op.Line), Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.LogicalExpr{ExprBase: p.base(op.Line), Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.BinaryExpr{ExprBase: p.base(op.Line), Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.BinaryExpr{ExprBase: p.base(op.Line), Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.BinaryExpr{ExprBase: p.base(op.Line), Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &ast.BinaryExpr{ExprBase: p.base(op.Line), Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.UnaryExpr{ExprBase: p.base(op.Line), Op: op, Right: right}
	}
	return p.call()
}

func (p *parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENT, "Expect property name after '.'.")
			expr = &ast.GetExpr{ExprBase: p.base(name.Line), Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= 255 {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RIGHT_PAREN, "Expect ')' after arguments.")
	return &ast.CallExpr{ExprBase: p.base(paren.Line), Callee: callee, Paren: paren, Args: args}
}

func (p *parser) primary() ast.Expr {
	tok := p.peek()
	switch {
	case p.match(token.FALSE, token.TRUE, token.NIL, token.NUMBER, token.STRING):
		return &ast.LiteralExpr{ExprBase: p.base(tok.Line), Value: tok.Literal}

	case p.match(token.THIS):
		return &ast.ThisExpr{ExprBase: p.base(tok.Line), Keyword: tok}

	case p.match(token.SUPER):
		keyword := tok
		p.consume(token.DOT, "Expect '.' after 'super'.")
		method := p.consume(token.IDENT, "Expect superclass method name.")
		return &ast.SuperExpr{ExprBase: p.base(keyword.Line), Keyword: keyword, Method: method}

	case p.match(token.IDENT):
		return &ast.VariableExpr{ExprBase: p.base(tok.Line), Name: tok}

	case p.match(token.LEFT_PAREN):
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.GroupingExpr{ExprBase: p.base(tok.Line), Expression: expr}

	default:
		p.errorAt(tok, "Expect expression.")
		panic(errSynchronize)
	}
}
