package rules

import (
	"github.com/olehManboy/Ethlint/internal/ast"
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/lint"
)

// noUnusedVars flags variables that are declared but never referenced.
type noUnusedVars struct{}

func (noUnusedVars) Meta() lint.Meta {
	return lint.Meta{
		Docs: lint.Docs{
			Description: "Flag variables that are declared but never used",
			Recommended: true,
			Type:        diag.SevWarning,
		},
	}
}

func (noUnusedVars) Create(ctx *lint.Context) {
	declared := make(map[string]*ast.Node)
	used := make(map[string]bool)

	record := func(ev lint.Event) {
		if ev.Exit || ev.Node.Name == "" {
			return
		}
		// Public state variables get a generated getter; that counts
		// as a use.
		if ev.Node.Is(ast.StateVariableDeclaration) && ev.Node.Attr("visibility") == "public" {
			return
		}
		declared[ev.Node.Name] = ev.Node
	}
	ctx.On(ast.StateVariableDeclaration, record)
	ctx.On(ast.VariableDeclaration, record)

	ctx.OnEnter(ast.Identifier, func(ev lint.Event) {
		used[ev.Node.Name] = true
	})

	ctx.OnExit(ast.Program, func(ev lint.Event) {
		for name, node := range declared {
			if used[name] {
				continue
			}
			ctx.Report(lint.Report{
				Node:    node,
				Message: "Variable '" + name + "' is declared but never used.",
			})
		}
	})
}
