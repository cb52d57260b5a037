package rules

import (
	"github.com/olehManboy/Ethlint/internal/ast"
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/lint"
)

// emitRule requires the emit keyword when firing events. Bare calls are
// collected during traversal and checked on program exit, once every event
// declaration has been seen regardless of where it appears in the file.
type emitRule struct{}

func (emitRule) Meta() lint.Meta {
	return lint.Meta{
		Docs: lint.Docs{
			Description: "Require the emit keyword when firing events",
			Recommended: true,
			Type:        diag.SevError,
		},
		Fixable: lint.FixableCode,
	}
}

func (emitRule) Create(ctx *lint.Context) {
	events := make(map[string]bool)
	var bare []*ast.Node

	ctx.OnEnter(ast.EventDeclaration, func(ev lint.Event) {
		events[ev.Node.Name] = true
	})

	ctx.OnEnter(ast.ExpressionStatement, func(ev lint.Event) {
		if len(ev.Node.Children) == 0 {
			return
		}
		call := ev.Node.Children[0]
		if !call.Is(ast.CallExpression) || len(call.Children) == 0 {
			return
		}
		if callee := call.Children[0]; callee.Is(ast.Identifier) {
			bare = append(bare, ev.Node)
		}
	})

	ctx.OnExit(ast.Program, func(lint.Event) {
		for _, stmt := range bare {
			name := stmt.Children[0].Children[0].Name
			if !events[name] {
				continue
			}
			ctx.Report(lint.Report{
				Node:    stmt,
				Message: "Use the emit keyword to fire the '" + name + "' event.",
				Fix: func(f *lint.Fixer) []diag.Edit {
					return []diag.Edit{f.InsertBefore("emit ")}
				},
			})
		}
	})
}
