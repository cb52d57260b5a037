package lint

import "github.com/olehManboy/Ethlint/internal/ast"

// Event is delivered to subscribed handlers twice per node: once on entry,
// before any child is visited, and once on exit after all children.
type Event struct {
	Node *ast.Node
	// Exit is false for the enter notification and true for the leave one.
	Exit bool
	// Ancestors holds the chain from the root down to the parent of Node.
	// The slice is owned by the traversal and only valid for the duration
	// of the handler call.
	Ancestors []*ast.Node
}

// Parent returns the immediate ancestor, or nil at the root.
func (e Event) Parent() *ast.Node {
	if len(e.Ancestors) == 0 {
		return nil
	}
	return e.Ancestors[len(e.Ancestors)-1]
}

// Handler reacts to a traversal event.
type Handler func(Event)

// Dispatcher routes traversal events to handlers keyed by node type.
// Handlers for one type fire in subscription order.
type Dispatcher struct {
	handlers map[string][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string][]Handler)}
}

func (d *Dispatcher) Subscribe(nodeType string, h Handler) {
	if h == nil {
		return
	}
	d.handlers[nodeType] = append(d.handlers[nodeType], h)
}

// HandlerCount reports how many handlers are registered for a node type.
func (d *Dispatcher) HandlerCount(nodeType string) int {
	return len(d.handlers[nodeType])
}

func (d *Dispatcher) Enter(node *ast.Node, ancestors []*ast.Node) {
	d.fire(node, ancestors, false)
}

func (d *Dispatcher) Leave(node *ast.Node, ancestors []*ast.Node) {
	d.fire(node, ancestors, true)
}

func (d *Dispatcher) fire(node *ast.Node, ancestors []*ast.Node, exit bool) {
	for _, h := range d.handlers[node.Type] {
		h(Event{Node: node, Exit: exit, Ancestors: ancestors})
	}
}
