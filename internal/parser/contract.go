package parser

import (
	"strings"

	"github.com/olehManboy/Ethlint/internal/ast"
	"github.com/olehManboy/Ethlint/internal/token"
)

// parsePragma parses `pragma solidity ^0.4.17;` and experimental pragmas.
// The node's Name is the pragma kind, Value the raw expression text.
func (p *Parser) parsePragma() *ast.Node {
	kw := p.expect(token.KwPragma)
	node := ast.New(ast.PragmaStatement, kw.Span)

	name := p.expect(token.Ident)
	node.Name = name.Text
	node.Span = node.Span.Cover(name.Span)

	var value strings.Builder
	for !p.atAny(token.Semicolon, token.EOF) {
		t := p.bump()
		if value.Len() > 0 && t.Kind == token.Ident {
			value.WriteByte(' ')
		}
		value.WriteString(t.Text)
		node.Span = node.Span.Cover(t.Span)
	}
	node.Value = value.String()

	if semi, ok := p.eat(token.Semicolon); ok {
		node.Span = node.Span.Cover(semi.Span)
	} else {
		p.errorf(p.lastSpan, "pragma directive must end with a semicolon")
	}
	return node
}

// parseImport parses the import directive forms and records the imported
// path in Value and the local binding (if any) in Name.
func (p *Parser) parseImport() *ast.Node {
	kw := p.expect(token.KwImport)
	node := ast.New(ast.ImportStatement, kw.Span)

	for !p.atAny(token.Semicolon, token.EOF) {
		t := p.bump()
		switch t.Kind {
		case token.StringLit:
			node.Value = unquote(t.Text)
		case token.Ident:
			// `import * as name from "..."` / `import "..." as name`
			node.Name = t.Text
		}
		node.Span = node.Span.Cover(t.Span)
	}

	if node.Value == "" {
		p.errorf(node.Span, "import directive is missing a file path")
	}
	if semi, ok := p.eat(token.Semicolon); ok {
		node.Span = node.Span.Cover(semi.Span)
	} else {
		p.errorf(p.lastSpan, "import directive must end with a semicolon")
	}
	return node
}

// parseContract parses contract, library, and interface definitions.
func (p *Parser) parseContract() *ast.Node {
	kw := p.bump()

	nodeType := ast.ContractStatement
	switch kw.Kind {
	case token.KwLibrary:
		nodeType = ast.LibraryStatement
	case token.KwInterface:
		nodeType = ast.InterfaceStatement
	}
	node := ast.New(nodeType, kw.Span)

	name := p.expect(token.Ident)
	node.Name = name.Text
	node.Span = node.Span.Cover(name.Span)

	if _, ok := p.eat(token.KwIs); ok {
		var parents []string
		for {
			parent := p.expect(token.Ident)
			if parent.Kind == token.Invalid {
				break
			}
			parents = append(parents, parent.Text)
			node.Span = node.Span.Cover(parent.Span)
			// Base constructor arguments are irrelevant to the rules;
			// consume them without modelling.
			if p.at(token.LParen) {
				p.skipBalanced(token.LParen, token.RParen)
			}
			if _, ok := p.eat(token.Comma); !ok {
				break
			}
		}
		if len(parents) > 0 {
			node.SetAttr("parents", strings.Join(parents, ","))
		}
	}

	p.expect(token.LBrace)
	for !p.atAny(token.RBrace, token.EOF) {
		before := p.pos
		node.Add(p.parseContractPartOrStatement(false))
		if p.pos == before {
			p.errorf(p.peek().Span, "unexpected %s in contract body", describe(p.peek()))
			p.bump()
		}
	}
	if rbrace, ok := p.eat(token.RBrace); ok {
		node.Span = node.Span.Cover(rbrace.Span)
	} else {
		p.errorf(p.lastSpan, "unclosed contract body")
	}
	return node
}

// parseContractPartOrStatement dispatches inside a contract body (and, when
// topLevel, for free-floating fragments).
func (p *Parser) parseContractPartOrStatement(topLevel bool) *ast.Node {
	switch p.peek().Kind {
	case token.KwFunction:
		return p.parseFunction()
	case token.KwModifier:
		return p.parseModifier()
	case token.KwEvent:
		return p.parseEvent()
	case token.KwStruct:
		return p.parseStruct()
	case token.KwEnum:
		return p.parseEnum()
	case token.KwUsing:
		return p.parseUsing()
	case token.KwMapping:
		return p.parseVariableDeclaration(!topLevel)
	case token.Ident:
		if p.looksLikeDeclaration() {
			return p.parseVariableDeclaration(!topLevel)
		}
		if topLevel {
			return p.parseStatement()
		}
		return p.parseVariableDeclaration(true)
	default:
		if topLevel {
			return p.parseStatement()
		}
		got := p.peek()
		p.errorf(got.Span, "unexpected %s in contract body", describe(got))
		p.bump()
		return nil
	}
}

// skipBalanced consumes an open/close delimiter pair with nesting.
func (p *Parser) skipBalanced(open, close token.Kind) {
	depth := 0
	for !p.at(token.EOF) {
		t := p.bump()
		switch t.Kind {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return
			}
		}
	}
}

func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'') && last == first {
			return s[1 : len(s)-1]
		}
	}
	return s
}
