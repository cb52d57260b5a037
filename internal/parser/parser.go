// Package parser implements a lenient recursive-descent parser for the
// Solidity subset the lint rules inspect. It is deliberately forgiving:
// free-floating declarations and statements are accepted at top level, so
// fragments like "uint x;" lint the same way full contracts do.
package parser

import (
	"fmt"

	"github.com/olehManboy/Ethlint/internal/ast"
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/lexer"
	"github.com/olehManboy/Ethlint/internal/source"
	"github.com/olehManboy/Ethlint/internal/token"
)

// Options configures one parse.
type Options struct {
	Reporter  diag.Reporter
	MaxErrors uint
}

// Parser holds the state for parsing one file. The whole token stream is
// scanned up front; declaration/expression disambiguation needs more
// lookahead than the lexer's one-token buffer provides.
type Parser struct {
	toks     []token.Token
	pos      int
	opts     Options
	errCount uint
	lastSpan source.Span
}

// ParseFile parses one file into a Program node. Syntax errors go to the
// reporter; the returned tree covers whatever could be recognized.
func ParseFile(file *source.File, opts Options) *ast.Node {
	lx := lexer.New(file, lexer.DefaultOptions(opts.Reporter))
	p := &Parser{toks: lx.Tokens(), opts: opts}
	return p.parseProgram()
}

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

// peekAt looks n tokens ahead; EOF beyond the end.
func (p *Parser) peekAt(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	cur := p.peek().Kind
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}

func (p *Parser) bump() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	p.lastSpan = t.Span
	return t
}

// eat consumes the next token when it matches k.
func (p *Parser) eat(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.bump(), true
	}
	return token.Token{}, false
}

// expect consumes a token of kind k or reports an error at the current
// position and leaves the stream untouched.
func (p *Parser) expect(k token.Kind) token.Token {
	if p.at(k) {
		return p.bump()
	}
	got := p.peek()
	p.errorf(got.Span, "expected %s, found %s", k, describe(got))
	return token.Token{Kind: token.Invalid, Span: got.Span}
}

func (p *Parser) errorf(span source.Span, format string, args ...any) {
	if p.opts.MaxErrors != 0 && p.errCount >= p.opts.MaxErrors {
		return
	}
	p.errCount++
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(diag.SevError, span, fmt.Sprintf(format, args...))
	}
}

// ErrorCount returns the number of syntax errors reported so far.
func (p *Parser) ErrorCount() uint {
	return p.errCount
}

func describe(t token.Token) string {
	switch t.Kind {
	case token.EOF:
		return "end of input"
	case token.Ident:
		return fmt.Sprintf("identifier %q", t.Text)
	default:
		return t.Kind.String()
	}
}

// parseProgram accepts pragma/import directives, contract definitions, and —
// leniently — free-floating contract parts and statements.
func (p *Parser) parseProgram() *ast.Node {
	first := p.peek()
	root := ast.New(ast.Program, source.Span{File: first.Span.File, Start: first.Span.Start, End: first.Span.Start})

	for !p.at(token.EOF) {
		before := p.pos
		switch p.peek().Kind {
		case token.KwPragma:
			root.Add(p.parsePragma())
		case token.KwImport:
			root.Add(p.parseImport())
		case token.KwContract, token.KwLibrary, token.KwInterface:
			root.Add(p.parseContract())
		default:
			root.Add(p.parseContractPartOrStatement(true))
		}
		// Guarantee progress even on malformed input.
		if p.pos == before {
			p.errorf(p.peek().Span, "unexpected %s", describe(p.peek()))
			p.bump()
		}
	}
	return root
}
