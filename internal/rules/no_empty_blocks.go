package rules

import (
	"github.com/olehManboy/Ethlint/internal/ast"
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/lint"
)

// noEmptyBlocks flags blocks with no statements. Fallback functions are
// exempt: an empty body is how a contract accepts plain transfers.
type noEmptyBlocks struct{}

func (noEmptyBlocks) Meta() lint.Meta {
	return lint.Meta{
		Docs: lint.Docs{
			Description: "Flag empty blocks",
			Recommended: true,
			Type:        diag.SevWarning,
		},
	}
}

func (noEmptyBlocks) Create(ctx *lint.Context) {
	ctx.OnEnter(ast.BlockStatement, func(ev lint.Event) {
		if len(ev.Node.Children) > 0 {
			return
		}
		if p := ev.Parent(); p != nil && p.Is(ast.FunctionDeclaration) && p.Attr("fallback") == "true" {
			return
		}
		ctx.Report(lint.Report{
			Node:    ev.Node,
			Message: "Block should not be empty.",
		})
	})
}
