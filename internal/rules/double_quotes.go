package rules

import (
	"github.com/olehManboy/Ethlint/internal/ast"
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/lint"
)

// doubleQuotes is the pre-"quotes" spelling of the double-quote style.
// Deprecated; kept so old configurations keep working and surface a notice
// pointing at the successor.
type doubleQuotes struct{}

func (doubleQuotes) Meta() lint.Meta {
	return lint.Meta{
		Docs: lint.Docs{
			Description: "Enforce double quotes for string literals",
			Type:        diag.SevError,
			ReplacedBy:  []string{"quotes"},
		},
		Fixable:    lint.FixableCode,
		Deprecated: true,
	}
}

func (doubleQuotes) Create(ctx *lint.Context) {
	ctx.OnEnter(ast.Literal, func(ev lint.Event) {
		if ev.Node.Attr("kind") != "string" {
			return
		}
		raw := ev.Node.Value
		if len(raw) < 2 || raw[0] == '"' {
			return
		}
		report := lint.Report{
			Node:    ev.Node,
			Message: "String literal must be quoted with double quotes.",
		}
		if fixed, ok := requote(raw, '"'); ok {
			report.Fix = func(f *lint.Fixer) []diag.Edit {
				return []diag.Edit{f.Replace(fixed)}
			}
		}
		ctx.Report(report)
	})
}
