package lint

import (
	"testing"

	"github.com/olehManboy/Ethlint/internal/ast"
	"github.com/olehManboy/Ethlint/internal/source"
)

func TestDispatcherRouting(t *testing.T) {
	d := NewDispatcher()

	var got []string
	d.Subscribe(ast.ContractStatement, func(ev Event) {
		if ev.Exit {
			got = append(got, "leave "+ev.Node.Name)
		} else {
			got = append(got, "enter "+ev.Node.Name)
		}
	})
	d.Subscribe(ast.ContractStatement, func(ev Event) {
		if !ev.Exit {
			got = append(got, "second")
		}
	})

	node := ast.New(ast.ContractStatement, source.Span{})
	node.Name = "Token"
	d.Enter(node, nil)
	d.Leave(node, nil)

	want := []string{"enter Token", "second", "leave Token"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	d := NewDispatcher()
	fired := false
	d.Subscribe(ast.EmitStatement, func(Event) { fired = true })

	d.Enter(ast.New(ast.ReturnStatement, source.Span{}), nil)
	if fired {
		t.Fatal("handler fired for wrong type")
	}
	if d.HandlerCount(ast.EmitStatement) != 1 || d.HandlerCount(ast.ReturnStatement) != 0 {
		t.Fatal("handler counts wrong")
	}
}

func TestEventParent(t *testing.T) {
	root := ast.New(ast.Program, source.Span{})
	child := ast.New(ast.ContractStatement, source.Span{})

	ev := Event{Node: child, Ancestors: []*ast.Node{root}}
	if ev.Parent() != root {
		t.Fatal("parent lookup failed")
	}
	if (Event{Node: root}).Parent() != nil {
		t.Fatal("root has no parent")
	}
}
