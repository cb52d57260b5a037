package parser

import (
	"strings"

	"github.com/olehManboy/Ethlint/internal/ast"
	"github.com/olehManboy/Ethlint/internal/token"
)

// looksLikeDeclaration decides, at an identifier, whether a variable
// declaration starts here rather than an expression statement.
//
//	uint x            Ident Ident
//	uint[] x          Ident [ ]
//	uint[8] x         Ident [ Number ] Ident
//	A.B x             Ident . Ident Ident
func (p *Parser) looksLikeDeclaration() bool {
	i := 0
	// Qualified type name: A.B.C
	for p.peekAt(i).Kind == token.Ident && p.peekAt(i+1).Kind == token.Dot {
		i += 2
	}
	if p.peekAt(i).Kind != token.Ident {
		return false
	}
	i++
	// Array suffixes.
	for p.peekAt(i).Kind == token.LBracket {
		j := i + 1
		if p.peekAt(j).Kind == token.NumberLit {
			j++
		}
		if p.peekAt(j).Kind != token.RBracket {
			return false
		}
		i = j + 1
	}
	next := p.peekAt(i)
	if next.Kind == token.Ident {
		return true
	}
	// `uint public x` at contract scope.
	return next.IsVisibility() || next.Kind == token.KwConstant ||
		next.IsDataLocation()
}

// parseType parses elementary, user-defined, mapping, and array types.
func (p *Parser) parseType() *ast.Node {
	if p.at(token.KwMapping) {
		return p.parseMappingType()
	}

	name := p.expect(token.Ident)
	node := ast.New(ast.Type, name.Span)
	node.Name = name.Text

	for p.at(token.Dot) {
		p.bump()
		member := p.expect(token.Ident)
		if member.Kind == token.Invalid {
			break
		}
		node.Name += "." + member.Text
		node.Span = node.Span.Cover(member.Span)
	}

	return p.parseArraySuffix(node)
}

func (p *Parser) parseMappingType() *ast.Node {
	kw := p.expect(token.KwMapping)
	node := ast.New(ast.MappingType, kw.Span)
	p.expect(token.LParen)
	node.Add(p.parseType())
	p.expect(token.Arrow)
	node.Add(p.parseType())
	if rparen, ok := p.eat(token.RParen); ok {
		node.Span = node.Span.Cover(rparen.Span)
	} else {
		p.errorf(p.lastSpan, "unclosed mapping type")
	}
	return p.parseArraySuffix(node)
}

func (p *Parser) parseArraySuffix(base *ast.Node) *ast.Node {
	for p.at(token.LBracket) {
		open := p.bump()
		arr := ast.New(ast.ArrayType, base.Span.Cover(open.Span))
		arr.Name = base.Name
		arr.Add(base)
		if !p.at(token.RBracket) {
			arr.Add(p.parseExpression())
		}
		if close, ok := p.eat(token.RBracket); ok {
			arr.Span = arr.Span.Cover(close.Span)
		} else {
			p.errorf(p.lastSpan, "unclosed array type")
		}
		base = arr
	}
	return base
}

// parseVariableDeclaration parses state variables (contract scope) and local
// variables (function scope): type, modifiers, name, optional initializer.
func (p *Parser) parseVariableDeclaration(local bool) *ast.Node {
	typ := p.parseType()

	nodeType := ast.StateVariableDeclaration
	if local {
		nodeType = ast.VariableDeclaration
	}
	node := ast.New(nodeType, typ.Span)
	node.Add(typ)

	for {
		t := p.peek()
		switch {
		case t.IsVisibility():
			node.SetAttr("visibility", t.Text)
			p.bump()
		case t.Kind == token.KwConstant:
			node.SetAttr("constant", "true")
			p.bump()
		case t.IsDataLocation():
			node.SetAttr("location", t.Text)
			p.bump()
		default:
			goto name
		}
	}

name:
	name := p.expect(token.Ident)
	if name.Kind != token.Invalid {
		node.Name = name.Text
		node.Span = node.Span.Cover(name.Span)
	}

	if _, ok := p.eat(token.Assign); ok {
		node.Add(p.parseExpression())
	}

	if semi, ok := p.eat(token.Semicolon); ok {
		node.Span = node.Span.Cover(semi.Span)
	} else {
		p.errorf(p.lastSpan, "variable declaration must end with a semicolon")
		p.recoverStatement()
	}
	return node
}

// parseFunction parses function declarations, including the old-style
// constructor form `function ContractName(...)`.
func (p *Parser) parseFunction() *ast.Node {
	kw := p.expect(token.KwFunction)
	node := ast.New(ast.FunctionDeclaration, kw.Span)

	if name, ok := p.eat(token.Ident); ok {
		node.Name = name.Text
		node.Span = node.Span.Cover(name.Span)
	} else {
		node.SetAttr("fallback", "true")
	}

	p.parseParameterList(node, "")

	var modifiers []string
	for {
		t := p.peek()
		switch {
		case t.IsVisibility():
			node.SetAttr("visibility", t.Text)
			p.bump()
		case t.IsStateMutability():
			node.SetAttr("mutability", t.Text)
			p.bump()
		case t.Kind == token.KwReturns:
			p.bump()
			p.parseParameterList(node, "returns")
		case t.Kind == token.Ident:
			// Modifier invocation, possibly with arguments.
			modifiers = append(modifiers, t.Text)
			p.bump()
			if p.at(token.LParen) {
				p.skipBalanced(token.LParen, token.RParen)
			}
		default:
			goto body
		}
	}

body:
	if len(modifiers) > 0 {
		node.SetAttr("modifiers", strings.Join(modifiers, ","))
	}

	switch {
	case p.at(token.LBrace):
		node.Add(p.parseBlock())
	case p.at(token.Semicolon):
		semi := p.bump()
		node.Span = node.Span.Cover(semi.Span)
		node.SetAttr("abstract", "true")
	default:
		p.errorf(p.peek().Span, "expected function body or ';', found %s", describe(p.peek()))
	}
	return node
}

func (p *Parser) parseModifier() *ast.Node {
	kw := p.expect(token.KwModifier)
	node := ast.New(ast.ModifierDeclaration, kw.Span)

	name := p.expect(token.Ident)
	if name.Kind != token.Invalid {
		node.Name = name.Text
		node.Span = node.Span.Cover(name.Span)
	}

	if p.at(token.LParen) {
		p.parseParameterList(node, "")
	}
	if p.at(token.LBrace) {
		node.Add(p.parseBlock())
	} else {
		p.errorf(p.peek().Span, "modifier %q has no body", node.Name)
	}
	return node
}

func (p *Parser) parseEvent() *ast.Node {
	kw := p.expect(token.KwEvent)
	node := ast.New(ast.EventDeclaration, kw.Span)

	name := p.expect(token.Ident)
	if name.Kind != token.Invalid {
		node.Name = name.Text
		node.Span = node.Span.Cover(name.Span)
	}

	p.parseParameterList(node, "")
	if _, ok := p.eat(token.KwAnonymous); ok {
		node.SetAttr("anonymous", "true")
	}
	if semi, ok := p.eat(token.Semicolon); ok {
		node.Span = node.Span.Cover(semi.Span)
	} else {
		p.errorf(p.lastSpan, "event declaration must end with a semicolon")
	}
	return node
}

// parseParameterList parses `(type modifiers? name?, ...)` into
// InformalParameter children. A non-empty group marks return parameters.
func (p *Parser) parseParameterList(parent *ast.Node, group string) {
	open := p.expect(token.LParen)
	if open.Kind == token.Invalid {
		return
	}
	parent.Span = parent.Span.Cover(open.Span)

	for !p.atAny(token.RParen, token.EOF) {
		param := ast.New(ast.InformalParameter, p.peek().Span)
		param.Add(p.parseType())
		if group != "" {
			param.SetAttr("group", group)
		}

		for {
			t := p.peek()
			switch {
			case t.Kind == token.KwIndexed:
				param.SetAttr("indexed", "true")
				p.bump()
			case t.IsDataLocation():
				param.SetAttr("location", t.Text)
				p.bump()
			default:
				goto paramName
			}
		}

	paramName:
		if name, ok := p.eat(token.Ident); ok {
			param.Name = name.Text
			param.Span = param.Span.Cover(name.Span)
		}
		parent.Add(param)

		if _, ok := p.eat(token.Comma); !ok {
			break
		}
	}

	if close, ok := p.eat(token.RParen); ok {
		parent.Span = parent.Span.Cover(close.Span)
	} else {
		p.errorf(p.lastSpan, "unclosed parameter list")
	}
}

func (p *Parser) parseStruct() *ast.Node {
	kw := p.expect(token.KwStruct)
	node := ast.New(ast.StructDeclaration, kw.Span)

	name := p.expect(token.Ident)
	if name.Kind != token.Invalid {
		node.Name = name.Text
		node.Span = node.Span.Cover(name.Span)
	}

	p.expect(token.LBrace)
	for !p.atAny(token.RBrace, token.EOF) {
		before := p.pos
		node.Add(p.parseVariableDeclaration(true))
		if p.pos == before {
			p.bump()
		}
	}
	if rbrace, ok := p.eat(token.RBrace); ok {
		node.Span = node.Span.Cover(rbrace.Span)
	} else {
		p.errorf(p.lastSpan, "unclosed struct body")
	}
	return node
}

func (p *Parser) parseEnum() *ast.Node {
	kw := p.expect(token.KwEnum)
	node := ast.New(ast.EnumDeclaration, kw.Span)

	name := p.expect(token.Ident)
	if name.Kind != token.Invalid {
		node.Name = name.Text
		node.Span = node.Span.Cover(name.Span)
	}

	p.expect(token.LBrace)
	for !p.atAny(token.RBrace, token.EOF) {
		member := p.expect(token.Ident)
		if member.Kind == token.Invalid {
			p.bump()
			continue
		}
		id := ast.New(ast.Identifier, member.Span)
		id.Name = member.Text
		node.Add(id)
		if _, ok := p.eat(token.Comma); !ok {
			break
		}
	}
	if rbrace, ok := p.eat(token.RBrace); ok {
		node.Span = node.Span.Cover(rbrace.Span)
	} else {
		p.errorf(p.lastSpan, "unclosed enum body")
	}
	return node
}

// parseUsing parses `using LibraryName for Type;`.
func (p *Parser) parseUsing() *ast.Node {
	kw := p.expect(token.KwUsing)
	node := ast.New(ast.UsingStatement, kw.Span)

	lib := p.expect(token.Ident)
	if lib.Kind != token.Invalid {
		node.Name = lib.Text
		node.Span = node.Span.Cover(lib.Span)
	}

	// `for` is scanned as KwFor.
	p.expect(token.KwFor)
	if p.at(token.Star) {
		star := p.bump()
		node.Value = "*"
		node.Span = node.Span.Cover(star.Span)
	} else {
		typ := p.parseType()
		node.Value = typ.Name
		node.Add(typ)
	}

	if semi, ok := p.eat(token.Semicolon); ok {
		node.Span = node.Span.Cover(semi.Span)
	} else {
		p.errorf(p.lastSpan, "using directive must end with a semicolon")
	}
	return node
}
