package diag

import (
	"testing"

	"github.com/olehManboy/Ethlint/internal/source"
)

func TestBagSortInternalFirst(t *testing.T) {
	b := NewBag(0)
	b.Add(Diagnostic{Rule: "b", Line: 3, Column: 1})
	b.Add(Diagnostic{Rule: "a", Line: 1, Column: 5})
	b.Add(Diagnostic{Rule: "engine", Internal: true})
	b.Add(Diagnostic{Rule: "c", Line: 1, Column: 2})

	b.Sort()
	items := b.Items()
	want := []string{"engine", "c", "a", "b"}
	for i, d := range items {
		if d.Rule != want[i] {
			t.Fatalf("position %d: got %q, want %q", i, d.Rule, want[i])
		}
	}
}

func TestBagSortStableAtSamePosition(t *testing.T) {
	b := NewBag(0)
	b.Add(Diagnostic{Rule: "first", Line: 2, Column: 4})
	b.Add(Diagnostic{Rule: "second", Line: 2, Column: 4})
	b.Sort()
	if b.Items()[0].Rule != "first" || b.Items()[1].Rule != "second" {
		t.Fatal("stable order lost for equal positions")
	}
}

func TestBagCap(t *testing.T) {
	b := NewBag(2)
	if !b.Add(Diagnostic{}) || !b.Add(Diagnostic{}) {
		t.Fatal("adds below cap must succeed")
	}
	if b.Add(Diagnostic{}) {
		t.Fatal("add above cap must fail")
	}
	if b.Len() != 2 {
		t.Fatalf("len: %d", b.Len())
	}
}

func TestBagDropInternal(t *testing.T) {
	b := NewBag(0)
	b.Add(Diagnostic{Rule: "x", Internal: true})
	b.Add(Diagnostic{Rule: "y", Line: 1, Column: 1})
	b.DropInternal()
	if b.Len() != 1 || b.Items()[0].Rule != "y" {
		t.Fatalf("items: %+v", b.Items())
	}
}

func TestBagTakeEmptiesBag(t *testing.T) {
	b := NewBag(0)
	b.Add(Diagnostic{Rule: "x"})
	out := b.Take()
	if len(out) != 1 || b.Len() != 0 {
		t.Fatalf("take: %d left %d", len(out), b.Len())
	}
}

func TestEditOverlaps(t *testing.T) {
	tests := []struct {
		a, b Edit
		want bool
	}{
		{Edit{Start: 0, End: 5}, Edit{Start: 5, End: 9}, false},
		{Edit{Start: 0, End: 5}, Edit{Start: 4, End: 9}, true},
		{Edit{Start: 3, End: 3}, Edit{Start: 3, End: 3}, false},
		{Edit{Start: 3, End: 3}, Edit{Start: 0, End: 5}, true},
		{Edit{Start: 3, End: 3}, Edit{Start: 3, End: 5}, true},
		{Edit{Start: 3, End: 3}, Edit{Start: 0, End: 3}, false},
	}
	for i, tt := range tests {
		if got := tt.a.Overlaps(tt.b); got != tt.want {
			t.Errorf("case %d: got %v, want %v", i, got, tt.want)
		}
		if got := tt.b.Overlaps(tt.a); got != tt.want {
			t.Errorf("case %d (swapped): got %v, want %v", i, got, tt.want)
		}
	}
}

func TestBagReporterResolvesLineCol(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.sol", []byte("uint x;\nuint y;"))
	f := fs.Get(id)

	bag := NewBag(0)
	r := BagReporter{Bag: bag, File: f, Rule: "parse"}
	r.Report(SevError, source.Span{File: id, Start: 8, End: 12}, "boom")

	d := bag.Items()[0]
	if d.Line != 2 || d.Column != 1 {
		t.Fatalf("resolved %d:%d, want 2:1", d.Line, d.Column)
	}
	if d.Rule != "parse" || d.Severity != SevError {
		t.Fatalf("diagnostic: %+v", d)
	}
}

func TestParseSeverity(t *testing.T) {
	if s, ok := ParseSeverity("error"); !ok || s != SevError {
		t.Fatal("error")
	}
	if s, ok := ParseSeverity("warning"); !ok || s != SevWarning {
		t.Fatal("warning")
	}
	if _, ok := ParseSeverity("fatal"); ok {
		t.Fatal("fatal must not parse")
	}
}
