package lexer

import (
	"github.com/olehManboy/Ethlint/internal/source"
	"github.com/olehManboy/Ethlint/internal/token"
)

// Lexer turns Solidity source bytes into a token stream.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // accumulated leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// File returns the file being scanned.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// Next returns the next significant token with its leading trivia attached.
// After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.cursor.Span(lx.cursor.Off),
		}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStart(ch):
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '"' || ch == '\'':
		tok = lx.scanString()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	if lx.opts.KeepTrivia {
		tok.Leading = lx.hold
	}
	lx.hold = nil
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Tokens scans the whole file into a slice, terminated by EOF.
func (lx *Lexer) Tokens() []token.Token {
	out := make([]token.Token, 0, 128)
	for {
		t := lx.Next()
		out = append(out, t)
		if t.Kind == token.EOF {
			return out
		}
	}
}
