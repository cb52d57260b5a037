package diagfmt

import (
	"strings"
	"testing"

	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/source"
)

func sample() []diag.Diagnostic {
	return []diag.Diagnostic{
		{
			Rule:     "quotes",
			Severity: diag.SevError,
			Message:  "String literal must be quoted with double quotes.",
			Primary:  source.Span{Start: 11, End: 16},
			Line:     1,
			Column:   12,
		},
		{
			Rule:     "no-unused-vars",
			Severity: diag.SevWarning,
			Message:  "Variable 'y' is declared but never used.",
			Primary:  source.Span{Start: 18, End: 25},
			Line:     2,
			Column:   1,
		},
	}
}

func TestPrettyPlain(t *testing.T) {
	src := []byte("string s = 'bad';\nuint y;\n")
	var b strings.Builder
	Pretty(&b, "token.sol", src, sample(), PrettyOpts{ShowSource: true})
	out := b.String()

	if !strings.Contains(out, "token.sol:1:12: error: String literal must be quoted with double quotes. [quotes]") {
		t.Fatalf("missing head line:\n%s", out)
	}
	if !strings.Contains(out, "  string s = 'bad';\n") {
		t.Fatalf("missing source excerpt:\n%s", out)
	}
	if !strings.Contains(out, "^~~~~") {
		t.Fatalf("missing caret underline:\n%s", out)
	}
	if !strings.Contains(out, "token.sol:2:1: warning:") {
		t.Fatalf("missing second diagnostic:\n%s", out)
	}
}

func TestPrettyWithoutSource(t *testing.T) {
	var b strings.Builder
	Pretty(&b, "token.sol", nil, sample(), PrettyOpts{})
	out := b.String()
	if strings.Contains(out, "^") {
		t.Fatalf("caret rendered without source:\n%s", out)
	}
}

func TestPrettyInternalNotice(t *testing.T) {
	var b strings.Builder
	Pretty(&b, "token.sol", nil, []diag.Diagnostic{{
		Rule:     "double-quotes",
		Severity: diag.SevWarning,
		Message:  "rule is deprecated",
		Internal: true,
	}}, PrettyOpts{})
	out := b.String()
	if !strings.HasPrefix(out, "token.sol: warning:") {
		t.Fatalf("internal notice should skip the position:\n%s", out)
	}
}

func TestPrettySkipsCleanFiles(t *testing.T) {
	var b strings.Builder
	Pretty(&b, "clean.sol", nil, nil, PrettyOpts{})
	if b.Len() != 0 {
		t.Fatalf("output for clean file: %q", b.String())
	}
}

func TestCaretAlignment(t *testing.T) {
	d := diag.Diagnostic{Primary: source.Span{Start: 5, End: 8}, Line: 1, Column: 6}
	got := caret("uint xyz;", d)
	if got != "     ^~~" {
		t.Fatalf("caret = %q", got)
	}
}

func TestSummary(t *testing.T) {
	var b strings.Builder
	Summary(&b, 3, 0, 0, PrettyOpts{})
	if !strings.Contains(b.String(), "no issues") {
		t.Fatalf("summary = %q", b.String())
	}
	b.Reset()
	Summary(&b, 3, 2, 1, PrettyOpts{})
	if !strings.Contains(b.String(), "2 error(s), 1 warning(s)") {
		t.Fatalf("summary = %q", b.String())
	}
}
