package lexer

import (
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/token"
)

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// scanNumber scans decimal and hexadecimal literals, including fractions and
// exponents. Denomination suffixes (wei, ether, ...) are separate Ident
// tokens; the parser folds them into the literal node.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Off

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		digits := 0
		for !lx.cursor.EOF() && isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
			digits++
		}
		if digits == 0 {
			lx.opts.report(diag.SevError, lx.cursor.Span(start), "hex literal has no digits")
		}
		return lx.numberToken(start)
	}

	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// Fraction: '.' followed by a digit.
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// Exponent: e / E with optional sign.
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		next := lx.cursor.PeekAt(1)
		signed := next == '+' || next == '-'
		digitAt := uint32(1)
		if signed {
			digitAt = 2
		}
		if isDec(lx.cursor.PeekAt(digitAt)) {
			lx.cursor.Bump() // e
			if signed {
				lx.cursor.Bump()
			}
			for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	return lx.numberToken(start)
}

func (lx *Lexer) numberToken(start uint32) token.Token {
	return token.Token{
		Kind: token.NumberLit,
		Span: lx.cursor.Span(start),
		Text: lx.cursor.Text(start),
	}
}
