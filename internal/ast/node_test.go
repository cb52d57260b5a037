package ast

import (
	"testing"

	"github.com/olehManboy/Ethlint/internal/source"
)

func TestAddWidensSpan(t *testing.T) {
	root := New(Program, source.Span{Start: 5, End: 5})
	root.Add(New(PragmaStatement, source.Span{Start: 0, End: 10}))
	root.Add(New(ContractStatement, source.Span{Start: 11, End: 40}))

	if root.Span.Start != 0 || root.Span.End != 40 {
		t.Fatalf("span not widened: %+v", root.Span)
	}
	if len(root.Children) != 2 {
		t.Fatalf("children: %d", len(root.Children))
	}
}

func TestAddSkipsNil(t *testing.T) {
	root := New(Program, source.Span{})
	root.Add(nil, New(PragmaStatement, source.Span{}))
	if len(root.Children) != 1 {
		t.Fatalf("children: %d", len(root.Children))
	}
}

func TestAttrRoundTrip(t *testing.T) {
	n := New(BinaryExpression, source.Span{})
	if n.Attr("operator") != "" {
		t.Fatal("missing attr must be empty")
	}
	n.SetAttr("operator", "+")
	if n.Attr("operator") != "+" {
		t.Fatalf("attr: %q", n.Attr("operator"))
	}
}

func TestChildLookups(t *testing.T) {
	root := New(ContractStatement, source.Span{})
	root.Add(
		New(StateVariableDeclaration, source.Span{}),
		New(FunctionDeclaration, source.Span{}),
		New(StateVariableDeclaration, source.Span{}),
	)

	if got := root.FirstChild(FunctionDeclaration); got == nil {
		t.Fatal("FirstChild miss")
	}
	if got := root.FirstChild(EventDeclaration); got != nil {
		t.Fatal("FirstChild false positive")
	}
	if got := len(root.ChildrenOfType(StateVariableDeclaration)); got != 2 {
		t.Fatalf("ChildrenOfType: %d", got)
	}
	if got := root.Count(); got != 4 {
		t.Fatalf("Count: %d", got)
	}
}
