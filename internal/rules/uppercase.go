package rules

import (
	"github.com/olehManboy/Ethlint/internal/ast"
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/lint"
)

// uppercase requires constant state variables to be named in
// UPPER_SNAKE_CASE.
type uppercase struct{}

func (uppercase) Meta() lint.Meta {
	return lint.Meta{
		Docs: lint.Docs{
			Description: "Require constants to be named in UPPER_SNAKE_CASE",
			Recommended: true,
			Type:        diag.SevWarning,
		},
	}
}

func (uppercase) Create(ctx *lint.Context) {
	ctx.OnEnter(ast.StateVariableDeclaration, func(ev lint.Event) {
		if ev.Node.Attr("constant") != "true" || ev.Node.Name == "" {
			return
		}
		if isUpperSnake(ev.Node.Name) {
			return
		}
		ctx.Report(lint.Report{
			Node:    ev.Node,
			Message: "Constant '" + ev.Node.Name + "' must be in UPPER_SNAKE_CASE.",
		})
	})
}

func isUpperSnake(name string) bool {
	if name[0] < 'A' || name[0] > 'Z' {
		return false
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}
