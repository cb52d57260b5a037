// Package rules holds the builtin lint rules. Each rule is a small module
// registered under its configuration name; the engine knows nothing about
// any of them beyond the Rule interface.
package rules

import (
	"github.com/olehManboy/Ethlint/internal/lint"
)

// Builtin returns a registry with every builtin rule installed.
func Builtin() *lint.Registry {
	reg := lint.NewRegistry()
	reg.MustRegister("no-unused-vars", noUnusedVars{})
	reg.MustRegister("quotes", quotes{})
	reg.MustRegister("double-quotes", doubleQuotes{})
	reg.MustRegister("deprecated-suicide", deprecatedSuicide{})
	reg.MustRegister("emit", emitRule{})
	reg.MustRegister("pragma-on-top", pragmaOnTop{})
	reg.MustRegister("imports-on-top", importsOnTop{})
	reg.MustRegister("uppercase", uppercase{})
	reg.MustRegister("mixedcase", mixedcase{})
	reg.MustRegister("no-empty-blocks", noEmptyBlocks{})
	reg.MustRegister("max-len", maxLen{})
	return reg
}

// Recommended returns the rule set enabled by `ethlint init`.
func Recommended() map[string]any {
	out := make(map[string]any)
	reg := Builtin()
	for _, name := range reg.Names() {
		rule, _ := reg.Get(name)
		meta := rule.Meta()
		if meta.Docs.Recommended && !meta.Deprecated {
			out[name] = true
		}
	}
	return out
}
