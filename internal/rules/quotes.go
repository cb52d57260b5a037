package rules

import (
	"strings"

	"github.com/olehManboy/Ethlint/internal/ast"
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/lint"
)

// quotes enforces one quote style for string literals. The option is
// "double" (default) or "single".
type quotes struct{}

func (quotes) Meta() lint.Meta {
	return lint.Meta{
		Docs: lint.Docs{
			Description: "Enforce a consistent quote style for string literals",
			Recommended: true,
			Type:        diag.SevError,
		},
		Schema:  []lint.Constraint{{Type: "string", MinLength: 1}},
		Fixable: lint.FixableCode,
	}
}

func (quotes) Create(ctx *lint.Context) {
	want := byte('"')
	style := "double"
	if s, ok := ctx.Option(0).(string); ok && s == "single" {
		want = '\''
		style = "single"
	}

	ctx.OnEnter(ast.Literal, func(ev lint.Event) {
		if ev.Node.Attr("kind") != "string" {
			return
		}
		raw := ev.Node.Value
		if len(raw) < 2 || raw[0] == want {
			return
		}
		report := lint.Report{
			Node:    ev.Node,
			Message: "String literal must be quoted with " + style + " quotes.",
		}
		if fixed, ok := requote(raw, want); ok {
			report.Fix = func(f *lint.Fixer) []diag.Edit {
				return []diag.Edit{f.Replace(fixed)}
			}
		}
		ctx.Report(report)
	})
}

// requote swaps the outer quote style of a raw literal (quotes included).
// Literals whose body mentions either quote character are left for a human;
// rewriting escapes is not worth the risk.
func requote(raw string, want byte) (string, bool) {
	body := raw[1 : len(raw)-1]
	if strings.ContainsAny(body, `"'\`) {
		return "", false
	}
	return string(want) + body + string(want), true
}
