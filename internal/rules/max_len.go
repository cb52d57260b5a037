package rules

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/olehManboy/Ethlint/internal/ast"
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/lint"
	"github.com/olehManboy/Ethlint/internal/source"
)

const defaultMaxLen = 120

// maxLen caps line length, measured in display cells so wide characters in
// comments and string literals count for what they occupy on screen.
type maxLen struct{}

func (maxLen) Meta() lint.Meta {
	return lint.Meta{
		Docs: lint.Docs{
			Description: "Cap the length of a source line",
			Recommended: true,
			Type:        diag.SevWarning,
		},
		Schema: []lint.Constraint{lint.IntRange(1, 400)},
	}
}

func (maxLen) Create(ctx *lint.Context) {
	limit := defaultMaxLen
	if n, ok := optionInt(ctx.Option(0)); ok {
		limit = n
	}

	ctx.OnEnter(ast.Program, func(ev lint.Event) {
		for i, line := range strings.Split(ctx.Source(), "\n") {
			width := runewidth.StringWidth(line)
			if width <= limit {
				continue
			}
			ctx.Report(lint.Report{
				Node:     ev.Node,
				Location: &source.LineCol{Line: uint32(i + 1), Col: uint32(limit + 1)},
				Message:  fmt.Sprintf("Line exceeds the limit of %d characters (found %d).", limit, width),
			})
		}
	})
}

func optionInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}
