package rules

import (
	"github.com/olehManboy/Ethlint/internal/ast"
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/lint"
)

// pragmaOnTop requires every pragma directive to appear before anything
// else in the file.
type pragmaOnTop struct{}

func (pragmaOnTop) Meta() lint.Meta {
	return lint.Meta{
		Docs: lint.Docs{
			Description: "Require pragma directives at the top of the file",
			Recommended: true,
			Type:        diag.SevError,
		},
	}
}

func (pragmaOnTop) Create(ctx *lint.Context) {
	ctx.OnEnter(ast.Program, func(ev lint.Event) {
		seenOther := false
		for _, child := range ev.Node.Children {
			if child.Is(ast.PragmaStatement) {
				if seenOther {
					ctx.Report(lint.Report{
						Node:    child,
						Message: "Pragma directives must be placed at the top of the file.",
					})
				}
				continue
			}
			seenOther = true
		}
	})
}
