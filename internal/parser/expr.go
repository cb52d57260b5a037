package parser

import (
	"github.com/olehManboy/Ethlint/internal/ast"
	"github.com/olehManboy/Ethlint/internal/token"
)

// Binary operator precedence, loosest first. Assignment and the conditional
// operator are handled separately for right associativity.
var binaryLevels = [][]token.Kind{
	{token.OrOr},
	{token.AndAnd},
	{token.EqEq, token.BangEq},
	{token.Lt, token.LtEq, token.Gt, token.GtEq},
	{token.Pipe},
	{token.Caret},
	{token.Amp},
	{token.Shl, token.Shr},
	{token.Plus, token.Minus},
	{token.Star, token.Slash, token.Percent},
	{token.StarStar},
}

func (p *Parser) parseExpression() *ast.Node {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() *ast.Node {
	left := p.parseConditional()
	if left == nil {
		return nil
	}

	switch p.peek().Kind {
	case token.Assign, token.PlusAssign, token.MinusAssign, token.StarAssign,
		token.SlashAssign, token.PercentAssign, token.AmpAssign,
		token.PipeAssign, token.CaretAssign, token.ShlAssign, token.ShrAssign:
		op := p.bump()
		right := p.parseAssignment()
		node := ast.New(ast.AssignmentExpression, left.Span)
		node.SetAttr("operator", op.Text)
		node.Add(left, right)
		return node
	}
	return left
}

func (p *Parser) parseConditional() *ast.Node {
	cond := p.parseBinary(0)
	if cond == nil || !p.at(token.Question) {
		return cond
	}
	p.bump()
	then := p.parseExpression()
	p.expect(token.Colon)
	els := p.parseConditional()

	node := ast.New(ast.ConditionalExpression, cond.Span)
	node.Add(cond, then, els)
	return node
}

func (p *Parser) parseBinary(level int) *ast.Node {
	if level >= len(binaryLevels) {
		return p.parseUnary()
	}

	left := p.parseBinary(level + 1)
	for left != nil && p.atAny(binaryLevels[level]...) {
		op := p.bump()
		right := p.parseBinary(level + 1)
		node := ast.New(ast.BinaryExpression, left.Span)
		node.SetAttr("operator", op.Text)
		node.Add(left, right)
		left = node
	}
	return left
}

func (p *Parser) parseUnary() *ast.Node {
	t := p.peek()
	switch t.Kind {
	case token.Bang, token.Tilde, token.Minus, token.Plus,
		token.PlusPlus, token.MinusMinus, token.KwDelete:
		op := p.bump()
		operand := p.parseUnary()
		node := ast.New(ast.UnaryExpression, op.Span)
		node.SetAttr("operator", op.Text)
		node.Add(operand)
		return node
	case token.KwNew:
		kw := p.bump()
		node := ast.New(ast.NewExpression, kw.Span)
		node.Add(p.parseUnary())
		return node
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() *ast.Node {
	expr := p.parsePrimary()

	for expr != nil {
		switch p.peek().Kind {
		case token.LParen:
			expr = p.parseCall(expr)
		case token.Dot:
			p.bump()
			member := p.expect(token.Ident)
			if member.Kind == token.Invalid {
				return expr
			}
			node := ast.New(ast.MemberExpression, expr.Span.Cover(member.Span))
			node.Name = member.Text
			node.Add(expr)
			expr = node
		case token.LBracket:
			p.bump()
			node := ast.New(ast.IndexExpression, expr.Span)
			node.Add(expr)
			if !p.at(token.RBracket) {
				node.Add(p.parseExpression())
			}
			if close, ok := p.eat(token.RBracket); ok {
				node.Span = node.Span.Cover(close.Span)
			} else {
				p.errorf(p.lastSpan, "unclosed index expression")
			}
			expr = node
		case token.PlusPlus, token.MinusMinus:
			op := p.bump()
			node := ast.New(ast.UnaryExpression, expr.Span.Cover(op.Span))
			node.SetAttr("operator", op.Text)
			node.SetAttr("postfix", "true")
			node.Add(expr)
			expr = node
		default:
			return expr
		}
	}
	return expr
}

// parseCall parses the argument list of a call. Children: callee, then args.
func (p *Parser) parseCall(callee *ast.Node) *ast.Node {
	open := p.expect(token.LParen)
	node := ast.New(ast.CallExpression, callee.Span.Cover(open.Span))
	node.Add(callee)

	// Named arguments `({a: 1, b: 2})` carry nothing the rules inspect;
	// consume the group without modelling it.
	if p.at(token.LBrace) {
		p.skipBalanced(token.LBrace, token.RBrace)
	} else {
		for !p.atAny(token.RParen, token.EOF) {
			arg := p.parseExpression()
			if arg == nil {
				break
			}
			node.Add(arg)
			if _, ok := p.eat(token.Comma); !ok {
				break
			}
		}
	}

	if close, ok := p.eat(token.RParen); ok {
		node.Span = node.Span.Cover(close.Span)
	} else {
		p.errorf(p.lastSpan, "unclosed call expression")
	}
	return node
}

func (p *Parser) parsePrimary() *ast.Node {
	t := p.peek()
	switch t.Kind {
	case token.Ident, token.KwMapping:
		p.bump()
		node := ast.New(ast.Identifier, t.Span)
		node.Name = t.Text
		return node

	case token.NumberLit:
		p.bump()
		node := ast.New(ast.Literal, t.Span)
		node.Value = t.Text
		node.SetAttr("kind", "number")
		// Denomination suffix: 10 wei, 1 ether, 60 seconds, ...
		if unit := p.peek(); unit.Kind == token.Ident && isDenomination(unit.Text) {
			p.bump()
			node.SetAttr("denomination", unit.Text)
			node.Span = node.Span.Cover(unit.Span)
		}
		return node

	case token.StringLit:
		p.bump()
		node := ast.New(ast.Literal, t.Span)
		node.Value = t.Text
		node.SetAttr("kind", "string")
		return node

	case token.HexLit:
		p.bump()
		node := ast.New(ast.Literal, t.Span)
		node.Value = t.Text
		node.SetAttr("kind", "hex")
		return node

	case token.KwTrue, token.KwFalse:
		p.bump()
		node := ast.New(ast.Literal, t.Span)
		node.Value = t.Text
		node.SetAttr("kind", "bool")
		return node

	case token.LParen:
		open := p.bump()
		node := ast.New(ast.TupleExpression, open.Span)
		for !p.atAny(token.RParen, token.EOF) {
			if p.at(token.Comma) {
				p.bump()
				continue
			}
			node.Add(p.parseExpression())
			if !p.at(token.Comma) {
				break
			}
		}
		if close, ok := p.eat(token.RParen); ok {
			node.Span = node.Span.Cover(close.Span)
		} else {
			p.errorf(p.lastSpan, "unclosed parenthesized expression")
		}
		// A single-element tuple is just a parenthesized expression.
		if len(node.Children) == 1 {
			return node.Children[0]
		}
		return node

	default:
		p.errorf(t.Span, "expected expression, found %s", describe(t))
		return nil
	}
}

var denominations = map[string]bool{
	"wei": true, "szabo": true, "finney": true, "ether": true,
	"seconds": true, "minutes": true, "hours": true, "days": true,
	"weeks": true, "years": true,
}

func isDenomination(s string) bool {
	return denominations[s]
}
