package lexer

import (
	"fmt"

	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/token"
)

// scanOperatorOrPunct scans operators and punctuation with maximal munch.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Off
	b := lx.cursor.Bump()

	kind := token.Invalid
	switch b {
	case '+':
		kind = lx.pick('+', token.PlusPlus, '=', token.PlusAssign, token.Plus)
	case '-':
		kind = lx.pick('-', token.MinusMinus, '=', token.MinusAssign, token.Minus)
	case '*':
		kind = lx.pick('*', token.StarStar, '=', token.StarAssign, token.Star)
	case '/':
		kind = lx.pick('=', token.SlashAssign, 0, token.Invalid, token.Slash)
	case '%':
		kind = lx.pick('=', token.PercentAssign, 0, token.Invalid, token.Percent)
	case '=':
		kind = lx.pick('=', token.EqEq, '>', token.Arrow, token.Assign)
	case '!':
		kind = lx.pick('=', token.BangEq, 0, token.Invalid, token.Bang)
	case '<':
		if lx.cursor.Peek() == '<' {
			lx.cursor.Bump()
			kind = lx.pick('=', token.ShlAssign, 0, token.Invalid, token.Shl)
		} else {
			kind = lx.pick('=', token.LtEq, 0, token.Invalid, token.Lt)
		}
	case '>':
		if lx.cursor.Peek() == '>' {
			lx.cursor.Bump()
			kind = lx.pick('=', token.ShrAssign, 0, token.Invalid, token.Shr)
		} else {
			kind = lx.pick('=', token.GtEq, 0, token.Invalid, token.Gt)
		}
	case '&':
		kind = lx.pick('&', token.AndAnd, '=', token.AmpAssign, token.Amp)
	case '|':
		kind = lx.pick('|', token.OrOr, '=', token.PipeAssign, token.Pipe)
	case '^':
		kind = lx.pick('=', token.CaretAssign, 0, token.Invalid, token.Caret)
	case '~':
		kind = token.Tilde
	case '?':
		kind = token.Question
	case ':':
		kind = token.Colon
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	}

	if kind == token.Invalid {
		lx.opts.report(diag.SevError, lx.cursor.Span(start),
			fmt.Sprintf("unexpected character %q", b))
	}

	return token.Token{
		Kind: kind,
		Span: lx.cursor.Span(start),
		Text: lx.cursor.Text(start),
	}
}

// pick consumes one of two optional follow-up bytes, mapping each to its
// two-character kind, and falls back to the single-character kind.
func (lx *Lexer) pick(b1 byte, k1 token.Kind, b2 byte, k2 token.Kind, fallback token.Kind) token.Kind {
	next := lx.cursor.Peek()
	if next == b1 {
		lx.cursor.Bump()
		return k1
	}
	if b2 != 0 && next == b2 {
		lx.cursor.Bump()
		return k2
	}
	return fallback
}
