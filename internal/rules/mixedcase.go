package rules

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/olehManboy/Ethlint/internal/ast"
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/lint"
)

// mixedcase requires functions, parameters, and non-constant variables to
// be named in mixedCase. The report suggests the mixedCase spelling of the
// offending name.
type mixedcase struct{}

func (mixedcase) Meta() lint.Meta {
	return lint.Meta{
		Docs: lint.Docs{
			Description: "Require function and variable names in mixedCase",
			Recommended: true,
			Type:        diag.SevWarning,
		},
	}
}

func (mixedcase) Create(ctx *lint.Context) {
	check := func(kind string) lint.Handler {
		return func(ev lint.Event) {
			if ev.Exit {
				return
			}
			name := ev.Node.Name
			if name == "" || isMixedCase(name) {
				return
			}
			// Constants are covered by the uppercase rule.
			if ev.Node.Attr("constant") == "true" {
				return
			}
			// Old-style constructors share the contract's name.
			if ev.Node.Is(ast.FunctionDeclaration) {
				if p := ev.Parent(); p != nil && p.Name == name {
					return
				}
			}
			ctx.Report(lint.Report{
				Node: ev.Node,
				Message: "Name of " + kind + " '" + name +
					"' is not in mixedCase; consider '" + toMixedCase(name) + "'.",
			})
		}
	}
	ctx.On(ast.FunctionDeclaration, check("function"))
	ctx.On(ast.ModifierDeclaration, check("modifier"))
	ctx.On(ast.VariableDeclaration, check("variable"))
	ctx.On(ast.InformalParameter, check("parameter"))
}

// isMixedCase accepts lowerCamelCase, with leading underscores tolerated
// for the common private-member convention.
func isMixedCase(name string) bool {
	name = strings.TrimLeft(name, "_")
	if name == "" {
		return false
	}
	if name[0] < 'a' || name[0] > 'z' {
		return false
	}
	return !strings.ContainsRune(name, '_')
}

// toMixedCase builds the mixedCase suggestion for a snake_case or
// CapitalCase name.
func toMixedCase(name string) string {
	prefix := name[:len(name)-len(strings.TrimLeft(name, "_"))]
	name = strings.TrimLeft(name, "_")
	if name == "" {
		return prefix
	}

	title := cases.Title(language.Und)
	var b strings.Builder
	b.WriteString(prefix)
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		if b.Len() == len(prefix) {
			b.WriteString(strings.ToLower(part[:1]) + part[1:])
			continue
		}
		b.WriteString(title.String(part))
	}
	return b.String()
}
