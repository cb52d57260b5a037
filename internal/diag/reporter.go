package diag

import "github.com/olehManboy/Ethlint/internal/source"

// Reporter is the minimal contract the lexer and parser use to surface
// problems without coupling to storage.
type Reporter interface {
	Report(sev Severity, primary source.Span, msg string)
}

// BagReporter writes into a Bag, resolving spans to line/column against the
// file being scanned.
type BagReporter struct {
	Bag  *Bag
	File *source.File
	// Rule labels produced diagnostics; scanners use a pseudo-rule name.
	Rule string
}

func (r BagReporter) Report(sev Severity, primary source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	d := Diagnostic{
		Rule:     r.Rule,
		Severity: sev,
		Message:  msg,
		Primary:  primary,
	}
	if r.File != nil {
		lc := r.File.LineCol(primary.Start)
		d.Line = lc.Line
		d.Column = lc.Col
	}
	r.Bag.Add(d)
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) Report(Severity, source.Span, string) {}
