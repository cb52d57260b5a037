package lexer

import (
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/token"
)

// collectLeadingTrivia consumes whitespace and comments into lx.hold until a
// significant token or EOF is reached.
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == '\n':
			start := lx.cursor.Off
			lx.cursor.Bump()
			lx.pushTrivia(token.TriviaNewline, start)

		case ch == ' ' || ch == '\t' || ch == '\r':
			start := lx.cursor.Off
			for !lx.cursor.EOF() {
				b := lx.cursor.Peek()
				if b != ' ' && b != '\t' && b != '\r' {
					break
				}
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)

		case ch == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' {
				return
			}
			switch b1 {
			case '/':
				lx.scanLineComment()
			case '*':
				lx.scanBlockComment()
			default:
				return
			}

		default:
			return
		}
	}
}

func (lx *Lexer) scanLineComment() {
	start := lx.cursor.Off
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	lx.pushTrivia(token.TriviaLineComment, start)
}

func (lx *Lexer) scanBlockComment() {
	start := lx.cursor.Off
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	closed := false
	for !lx.cursor.EOF() {
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			closed = true
			break
		}
		lx.cursor.Bump()
	}
	if !closed {
		lx.opts.report(diag.SevError, lx.cursor.Span(start), "unterminated block comment")
	}
	lx.pushTrivia(token.TriviaBlockComment, start)
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start uint32) {
	if !lx.opts.KeepTrivia {
		return
	}
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: lx.cursor.Span(start),
		Text: lx.cursor.Text(start),
	})
}
