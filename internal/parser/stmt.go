package parser

import (
	"github.com/olehManboy/Ethlint/internal/ast"
	"github.com/olehManboy/Ethlint/internal/token"
)

func (p *Parser) parseBlock() *ast.Node {
	open := p.expect(token.LBrace)
	node := ast.New(ast.BlockStatement, open.Span)

	for !p.atAny(token.RBrace, token.EOF) {
		before := p.pos
		node.Add(p.parseStatement())
		if p.pos == before {
			p.errorf(p.peek().Span, "unexpected %s in block", describe(p.peek()))
			p.bump()
		}
	}
	if close, ok := p.eat(token.RBrace); ok {
		node.Span = node.Span.Cover(close.Span)
	} else {
		p.errorf(p.lastSpan, "unclosed block")
	}
	return node
}

func (p *Parser) parseStatement() *ast.Node {
	switch p.peek().Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.KwIf:
		return p.parseIf()
	case token.KwFor:
		return p.parseFor()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwDo:
		return p.parseDoWhile()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwEmit:
		return p.parseEmit()
	case token.KwBreak:
		return p.parseSimpleStatement(ast.BreakStatement)
	case token.KwContinue:
		return p.parseSimpleStatement(ast.ContinueStatement)
	case token.KwThrow:
		return p.parseSimpleStatement(ast.ThrowStatement)
	case token.KwMapping:
		return p.parseVariableDeclaration(true)
	case token.Ident:
		if p.looksLikeDeclaration() {
			return p.parseVariableDeclaration(true)
		}
		return p.parseExpressionStatement()
	case token.Semicolon:
		// Empty statement; consume the stray semicolon silently.
		p.bump()
		return nil
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseIf() *ast.Node {
	kw := p.expect(token.KwIf)
	node := ast.New(ast.IfStatement, kw.Span)

	p.expect(token.LParen)
	node.Add(p.parseExpression())
	p.expect(token.RParen)

	node.Add(p.parseStatement())
	if _, ok := p.eat(token.KwElse); ok {
		node.Add(p.parseStatement())
	}
	return node
}

func (p *Parser) parseFor() *ast.Node {
	kw := p.expect(token.KwFor)
	node := ast.New(ast.ForStatement, kw.Span)

	p.expect(token.LParen)
	if !p.at(token.Semicolon) {
		if p.at(token.Ident) && p.looksLikeDeclaration() {
			node.Add(p.parseVariableDeclaration(true))
		} else {
			node.Add(p.parseExpression())
			p.expect(token.Semicolon)
		}
	} else {
		p.bump()
	}
	if !p.at(token.Semicolon) {
		node.Add(p.parseExpression())
	}
	p.expect(token.Semicolon)
	if !p.at(token.RParen) {
		node.Add(p.parseExpression())
	}
	p.expect(token.RParen)

	node.Add(p.parseStatement())
	return node
}

func (p *Parser) parseWhile() *ast.Node {
	kw := p.expect(token.KwWhile)
	node := ast.New(ast.WhileStatement, kw.Span)

	p.expect(token.LParen)
	node.Add(p.parseExpression())
	p.expect(token.RParen)
	node.Add(p.parseStatement())
	return node
}

func (p *Parser) parseDoWhile() *ast.Node {
	kw := p.expect(token.KwDo)
	node := ast.New(ast.DoWhileStatement, kw.Span)

	node.Add(p.parseStatement())
	p.expect(token.KwWhile)
	p.expect(token.LParen)
	node.Add(p.parseExpression())
	p.expect(token.RParen)
	if semi, ok := p.eat(token.Semicolon); ok {
		node.Span = node.Span.Cover(semi.Span)
	} else {
		p.errorf(p.lastSpan, "do-while statement must end with a semicolon")
	}
	return node
}

func (p *Parser) parseReturn() *ast.Node {
	kw := p.expect(token.KwReturn)
	node := ast.New(ast.ReturnStatement, kw.Span)

	if !p.at(token.Semicolon) {
		node.Add(p.parseExpression())
	}
	if semi, ok := p.eat(token.Semicolon); ok {
		node.Span = node.Span.Cover(semi.Span)
	} else {
		p.errorf(p.lastSpan, "return statement must end with a semicolon")
		p.recoverStatement()
	}
	return node
}

// parseEmit parses `emit EventName(args);`.
func (p *Parser) parseEmit() *ast.Node {
	kw := p.expect(token.KwEmit)
	node := ast.New(ast.EmitStatement, kw.Span)

	call := p.parseExpression()
	if call != nil && !call.Is(ast.CallExpression) {
		p.errorf(call.Span, "emit expects an event invocation")
	}
	node.Add(call)

	if semi, ok := p.eat(token.Semicolon); ok {
		node.Span = node.Span.Cover(semi.Span)
	} else {
		p.errorf(p.lastSpan, "emit statement must end with a semicolon")
		p.recoverStatement()
	}
	return node
}

func (p *Parser) parseSimpleStatement(nodeType string) *ast.Node {
	kw := p.bump()
	node := ast.New(nodeType, kw.Span)
	if semi, ok := p.eat(token.Semicolon); ok {
		node.Span = node.Span.Cover(semi.Span)
	} else {
		p.errorf(p.lastSpan, "statement must end with a semicolon")
	}
	return node
}

func (p *Parser) parseExpressionStatement() *ast.Node {
	expr := p.parseExpression()
	if expr == nil {
		return nil
	}
	node := ast.New(ast.ExpressionStatement, expr.Span)
	node.Add(expr)

	if semi, ok := p.eat(token.Semicolon); ok {
		node.Span = node.Span.Cover(semi.Span)
	} else {
		p.errorf(p.lastSpan, "expression statement must end with a semicolon")
		p.recoverStatement()
	}
	return node
}

// recoverStatement skips ahead to the next statement boundary.
func (p *Parser) recoverStatement() {
	for !p.atAny(token.EOF, token.Semicolon, token.RBrace) {
		p.bump()
	}
	p.eat(token.Semicolon)
}
