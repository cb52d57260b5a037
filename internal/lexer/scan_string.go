package lexer

import (
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/token"
)

// scanString scans a single- or double-quoted string literal. The token text
// keeps the quotes, so quote-style rules can inspect them.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Off
	quote := lx.cursor.Bump()

	closed := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
		if b == '\\' && !lx.cursor.EOF() {
			lx.cursor.Bump()
			continue
		}
		if b == quote {
			closed = true
			break
		}
	}
	if !closed {
		lx.opts.report(diag.SevError, lx.cursor.Span(start), "unterminated string literal")
	}

	return token.Token{
		Kind: token.StringLit,
		Span: lx.cursor.Span(start),
		Text: lx.cursor.Text(start),
	}
}

// scanHexLiteral scans hex"AABB" starting from the already-consumed "hex"
// identifier at start.
func (lx *Lexer) scanHexLiteral(start uint32) token.Token {
	quote := lx.cursor.Bump()

	closed := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == quote {
			closed = true
			break
		}
		if b == '\n' {
			break
		}
	}
	if !closed {
		lx.opts.report(diag.SevError, lx.cursor.Span(start), "unterminated hex literal")
	}

	return token.Token{
		Kind: token.HexLit,
		Span: lx.cursor.Span(start),
		Text: lx.cursor.Text(start),
	}
}
