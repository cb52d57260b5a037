package lexer

import (
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/source"
)

// Options configures a Lexer instance.
type Options struct {
	// Reporter receives scan errors. Nil means errors are discarded.
	Reporter diag.Reporter
	// KeepTrivia attaches leading whitespace and comments to tokens.
	// Rules that inspect comments rely on this; the parser itself does not.
	KeepTrivia bool
}

// DefaultOptions returns the options used by the lint driver.
func DefaultOptions(rep diag.Reporter) Options {
	return Options{
		Reporter:   rep,
		KeepTrivia: true,
	}
}

func (o *Options) report(sev diag.Severity, span source.Span, msg string) {
	if o.Reporter == nil {
		return
	}
	o.Reporter.Report(sev, span, msg)
}
