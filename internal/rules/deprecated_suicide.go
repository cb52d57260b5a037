package rules

import (
	"github.com/olehManboy/Ethlint/internal/ast"
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/lint"
)

// deprecatedSuicide rewrites suicide(...) calls to selfdestruct(...).
type deprecatedSuicide struct{}

func (deprecatedSuicide) Meta() lint.Meta {
	return lint.Meta{
		Docs: lint.Docs{
			Description: "Suggest selfdestruct over the deprecated suicide",
			Recommended: true,
			Type:        diag.SevWarning,
		},
		Fixable: lint.FixableCode,
	}
}

func (deprecatedSuicide) Create(ctx *lint.Context) {
	ctx.OnEnter(ast.CallExpression, func(ev lint.Event) {
		if len(ev.Node.Children) == 0 {
			return
		}
		callee := ev.Node.Children[0]
		if !callee.Is(ast.Identifier) || callee.Name != "suicide" {
			return
		}
		ctx.Report(lint.Report{
			Node:    callee,
			Message: "'suicide' is deprecated. Use 'selfdestruct' instead.",
			Fix: func(f *lint.Fixer) []diag.Edit {
				return []diag.Edit{f.Replace("selfdestruct")}
			},
		})
	})
}
