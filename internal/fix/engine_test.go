package fix

import (
	"testing"

	"github.com/olehManboy/Ethlint/internal/diag"
)

func d(rule string, edits ...diag.Edit) diag.Diagnostic {
	return diag.Diagnostic{Rule: rule, Severity: diag.SevWarning, Message: rule, Edits: edits}
}

func TestApplyNoFixableDiagnostics(t *testing.T) {
	src := "contract A {}"
	res := Apply(src, []diag.Diagnostic{d("plain")})
	if res.Fixed != src {
		t.Fatalf("source changed without fixes: %q", res.Fixed)
	}
	if res.Applied != 0 || len(res.Remaining) != 1 {
		t.Fatalf("applied=%d remaining=%d", res.Applied, len(res.Remaining))
	}
}

func TestApplySingleReplacement(t *testing.T) {
	src := `suicide(owner);`
	res := Apply(src, []diag.Diagnostic{
		d("deprecated-suicide", diag.Edit{Start: 0, End: 7, NewText: "selfdestruct"}),
	})
	if res.Fixed != `selfdestruct(owner);` {
		t.Fatalf("fixed = %q", res.Fixed)
	}
	if res.Applied != 1 || len(res.Remaining) != 0 {
		t.Fatalf("applied=%d remaining=%d", res.Applied, len(res.Remaining))
	}
}

func TestApplyNonOverlappingAllAccepted(t *testing.T) {
	src := "aa bb cc"
	res := Apply(src, []diag.Diagnostic{
		d("r1", diag.Edit{Start: 0, End: 2, NewText: "xx"}),
		d("r2", diag.Edit{Start: 3, End: 5, NewText: "yy"}),
		d("r3", diag.Edit{Start: 6, End: 8, NewText: "zz"}),
	})
	if res.Fixed != "xx yy zz" {
		t.Fatalf("fixed = %q", res.Fixed)
	}
	if res.Applied != 3 || len(res.Remaining) != 0 {
		t.Fatalf("applied=%d remaining=%d", res.Applied, len(res.Remaining))
	}
}

func TestApplyOverlapEarlierWins(t *testing.T) {
	src := "abcdef"
	res := Apply(src, []diag.Diagnostic{
		d("late", diag.Edit{Start: 2, End: 5, NewText: "Y"}),
		d("early", diag.Edit{Start: 0, End: 3, NewText: "X"}),
	})
	if res.Fixed != "Xdef" {
		t.Fatalf("fixed = %q", res.Fixed)
	}
	if res.Applied != 1 {
		t.Fatalf("applied = %d", res.Applied)
	}
	if len(res.Remaining) != 1 || res.Remaining[0].Rule != "late" {
		t.Fatalf("remaining = %+v", res.Remaining)
	}
}

func TestApplyTieBreakByRuleName(t *testing.T) {
	src := "abcdef"
	// Same edit range from two rules: the lexicographically smaller rule
	// name wins, whatever the input order.
	for _, order := range [][]diag.Diagnostic{
		{
			d("b-rule", diag.Edit{Start: 0, End: 3, NewText: "B"}),
			d("a-rule", diag.Edit{Start: 0, End: 3, NewText: "A"}),
		},
		{
			d("a-rule", diag.Edit{Start: 0, End: 3, NewText: "A"}),
			d("b-rule", diag.Edit{Start: 0, End: 3, NewText: "B"}),
		},
	} {
		res := Apply(src, order)
		if res.Fixed != "Adef" {
			t.Fatalf("fixed = %q", res.Fixed)
		}
		if res.Applied != 1 || len(res.Remaining) != 1 {
			t.Fatalf("applied=%d remaining=%d", res.Applied, len(res.Remaining))
		}
	}
}

func TestApplyAtomicEditSet(t *testing.T) {
	src := "one two three"
	// The second diagnostic's first edit would fit after the frontier,
	// but its set also touches the already-claimed region, so the
	// minimum start places it behind the frontier and the whole set is
	// skipped.
	res := Apply(src, []diag.Diagnostic{
		d("first", diag.Edit{Start: 0, End: 7, NewText: "ONE TWO"}),
		d("second",
			diag.Edit{Start: 4, End: 7, NewText: "2"},
			diag.Edit{Start: 8, End: 13, NewText: "3"}),
	})
	if res.Fixed != "ONE TWO three" {
		t.Fatalf("fixed = %q", res.Fixed)
	}
	if res.Applied != 1 || len(res.Remaining) != 1 {
		t.Fatalf("applied=%d remaining=%d", res.Applied, len(res.Remaining))
	}
}

func TestApplyMultiEditDiagnostic(t *testing.T) {
	src := "x = 'a' + 'b';"
	res := Apply(src, []diag.Diagnostic{
		d("quotes",
			diag.Edit{Start: 4, End: 7, NewText: `"a"`},
			diag.Edit{Start: 10, End: 13, NewText: `"b"`}),
	})
	if res.Fixed != `x = "a" + "b";` {
		t.Fatalf("fixed = %q", res.Fixed)
	}
	if res.Applied != 1 {
		t.Fatalf("applied = %d", res.Applied)
	}
}

func TestApplyInsertions(t *testing.T) {
	src := "ab"
	res := Apply(src, []diag.Diagnostic{
		d("ins1", diag.Edit{Start: 1, End: 1, NewText: "-"}),
		d("ins2", diag.Edit{Start: 2, End: 2, NewText: "!"}),
	})
	if res.Fixed != "a-b!" {
		t.Fatalf("fixed = %q", res.Fixed)
	}
	if res.Applied != 2 {
		t.Fatalf("applied = %d", res.Applied)
	}
}

func TestApplyRemainingKeepsInputOrder(t *testing.T) {
	src := "abcdef"
	res := Apply(src, []diag.Diagnostic{
		d("plain-1"),
		d("winner", diag.Edit{Start: 0, End: 4, NewText: "W"}),
		d("plain-2"),
		d("loser", diag.Edit{Start: 2, End: 5, NewText: "L"}),
	})
	if res.Fixed != "Wef" {
		t.Fatalf("fixed = %q", res.Fixed)
	}
	want := []string{"plain-1", "plain-2", "loser"}
	if len(res.Remaining) != len(want) {
		t.Fatalf("remaining = %+v", res.Remaining)
	}
	for i, name := range want {
		if res.Remaining[i].Rule != name {
			t.Errorf("remaining[%d] = %q, want %q", i, res.Remaining[i].Rule, name)
		}
	}
}
