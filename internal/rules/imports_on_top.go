package rules

import (
	"github.com/olehManboy/Ethlint/internal/ast"
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/lint"
)

// importsOnTop requires imports before any declaration; only pragma
// directives and other imports may precede an import.
type importsOnTop struct{}

func (importsOnTop) Meta() lint.Meta {
	return lint.Meta{
		Docs: lint.Docs{
			Description: "Require import statements before all declarations",
			Recommended: true,
			Type:        diag.SevError,
		},
	}
}

func (importsOnTop) Create(ctx *lint.Context) {
	ctx.OnEnter(ast.Program, func(ev lint.Event) {
		seenDecl := false
		for _, child := range ev.Node.Children {
			switch child.Type {
			case ast.PragmaStatement:
			case ast.ImportStatement:
				if seenDecl {
					ctx.Report(lint.Report{
						Node:    child,
						Message: "Import statements must come before all declarations.",
					})
				}
			default:
				seenDecl = true
			}
		}
	})
}
