package token

import (
	"github.com/olehManboy/Ethlint/internal/source"
)

// Token represents a single source token with its location and leading trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a number, string, hex, or boolean literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, HexLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a Solidity keyword.
func (t Token) IsKeyword() bool {
	_, ok := keywordText(t.Kind)
	return ok
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsVisibility reports whether the token is a visibility specifier.
func (t Token) IsVisibility() bool {
	switch t.Kind {
	case KwPublic, KwPrivate, KwInternal, KwExternal:
		return true
	default:
		return false
	}
}

// IsStateMutability reports whether the token is a mutability specifier.
func (t Token) IsStateMutability() bool {
	switch t.Kind {
	case KwConstant, KwPure, KwView, KwPayable:
		return true
	default:
		return false
	}
}

// IsDataLocation reports whether the token is a data-location specifier.
func (t Token) IsDataLocation() bool {
	switch t.Kind {
	case KwMemory, KwStorage, KwCalldata:
		return true
	default:
		return false
	}
}
