package lexer

import (
	"github.com/olehManboy/Ethlint/internal/token"
)

// Solidity identifiers: [A-Za-z_$][A-Za-z0-9_$]*.

func isIdentStart(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDec(b)
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Off
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	text := lx.cursor.Text(start)

	// hex"..." literal looks like an identifier until the quote.
	if text == "hex" && !lx.cursor.EOF() {
		if q := lx.cursor.Peek(); q == '"' || q == '\'' {
			return lx.scanHexLiteral(start)
		}
	}

	kind := token.Ident
	if kw, ok := token.LookupKeyword(text); ok {
		kind = kw
	}
	return token.Token{
		Kind: kind,
		Span: lx.cursor.Span(start),
		Text: text,
	}
}
